package handler

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	//エラーにはGoのフィールド名ではなくjson名を出す
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// validationMessage は欠けている必須フィールドを名指しするメッセージを作る。
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid body"
	}

	missing := []string{}
	for _, fe := range errs {
		if fe.Tag() == "required" || fe.Tag() == "min" {
			missing = append(missing, fe.Field())
			continue
		}
		return "invalid " + fe.Field()
	}
	if len(missing) > 0 {
		return "missing required fields: " + strings.Join(missing, ", ")
	}
	return "invalid body"
}
