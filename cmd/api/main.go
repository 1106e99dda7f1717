package main

import (
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/logger"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envがあれば読む（無くても環境変数だけで動く）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logg := logger.New("table-order-api")

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logg.Fatal().Err(err).Msg("db connect failed")
	}
	if err := gormDB.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.CustomizationGroup{},
		&model.CustomizationOption{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderItemOption{},
		&model.OrderStatusLog{},
		&model.Table{},
	); err != nil {
		logg.Fatal().Err(err).Msg("migrate failed")
	}

	//Repository（GORM実装）生成
	tx := infraRepo.NewTxManagerGorm(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	tableRepo := infraRepo.NewTableGormRepository(gormDB)

	//Usecase生成
	orderUC := usecase.NewOrderUsecase(tx, logg)
	statusUC := usecase.NewOrderStatusUsecase(tx, logg)
	tableUC := usecase.NewTableUsecase(tableRepo)
	menuUC := usecase.NewMenuUsecase(productRepo, categoryRepo)

	//Handler生成
	orderH := handler.NewOrderHandler(orderUC)
	staffH := handler.NewStaffOrderHandler(orderUC, statusUC)
	tableH := handler.NewTableHandler(tableUC)
	menuH := handler.NewMenuHandler(menuUC)

	//ルート登録
	e := server.New(logg)
	menuH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
	staffH.RegisterRoutes(e, cfg)
	tableH.RegisterRoutes(e, cfg)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := e.Start(addr); err != nil {
		logg.Fatal().Err(err).Msg("server stopped")
	}
}
