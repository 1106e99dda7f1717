package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTableUsecase_List(t *testing.T) {
	tablesRepo := new(TableRepoMock)
	tablesRepo.On("List", mock.Anything).Return([]model.Table{
		{ID: 1, TableNo: 1, Status: model.TableStatusFree},
		{ID: 2, TableNo: 2, Status: model.TableStatusOccupied},
	}, nil)

	uc := usecase.NewTableUsecase(tablesRepo)

	outs, err := uc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, len(outs))
	assert.Equal(t, "FREE", outs[0].Status)
	assert.Equal(t, "OCCUPIED", outs[1].Status)
}

func TestTableUsecase_Create(t *testing.T) {
	tablesRepo := new(TableRepoMock)
	tablesRepo.On("Create", mock.Anything, mock.MatchedBy(func(tbl model.Table) bool {
		//手動登録はFREEで始まる
		return tbl.TableNo == 8 && tbl.Status == model.TableStatusFree
	})).Return(model.Table{ID: 3, TableNo: 8, Status: model.TableStatusFree}, nil)

	uc := usecase.NewTableUsecase(tablesRepo)

	out, err := uc.Create(context.Background(), 8)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), out.ID)
	assert.Equal(t, 8, out.TableNo)

	tablesRepo.AssertExpectations(t)
}

func TestTableUsecase_Create_DuplicateNumber(t *testing.T) {
	tablesRepo := new(TableRepoMock)
	tablesRepo.On("Create", mock.Anything, mock.Anything).Return(model.Table{}, repo.ErrConflict)

	uc := usecase.NewTableUsecase(tablesRepo)

	_, err := uc.Create(context.Background(), 8)
	assertErrContains(t, err, "already exists")
}

func TestTableUsecase_Create_InvalidNumber(t *testing.T) {
	tablesRepo := new(TableRepoMock)

	uc := usecase.NewTableUsecase(tablesRepo)

	_, err := uc.Create(context.Background(), 0)
	assertErrContains(t, err, "invalid table_no")
	tablesRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTableUsecase_Free(t *testing.T) {
	tablesRepo := new(TableRepoMock)
	tablesRepo.On("UpdateStatus", mock.Anything, int64(5), model.TableStatusFree).Return(nil)

	uc := usecase.NewTableUsecase(tablesRepo)

	assert.NoError(t, uc.Free(context.Background(), 5))
	tablesRepo.AssertExpectations(t)
}

func TestTableUsecase_Free_NotFound(t *testing.T) {
	tablesRepo := new(TableRepoMock)
	tablesRepo.On("UpdateStatus", mock.Anything, int64(99), model.TableStatusFree).Return(repo.ErrNotFound)

	uc := usecase.NewTableUsecase(tablesRepo)

	assertErrContains(t, uc.Free(context.Background(), 99), "not found")
}

func TestTableUsecase_Delete(t *testing.T) {
	tablesRepo := new(TableRepoMock)
	tablesRepo.On("Delete", mock.Anything, int64(5)).Return(nil)

	uc := usecase.NewTableUsecase(tablesRepo)

	assert.NoError(t, uc.Delete(context.Background(), 5))
	tablesRepo.AssertExpectations(t)
}

func TestTableUsecase_Delete_NotFound(t *testing.T) {
	tablesRepo := new(TableRepoMock)
	tablesRepo.On("Delete", mock.Anything, int64(99)).Return(repo.ErrNotFound)

	uc := usecase.NewTableUsecase(tablesRepo)

	assertErrContains(t, uc.Delete(context.Background(), 99), "not found")
}
