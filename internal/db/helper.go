package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type ErrNotFound string

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found", string(e))
}

func HandleNotFound(err error, errMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound(errMsg)
	}
	return err
}

func HandleUpdateResult(result *gorm.DB, errMsg string) error {
	if result.Error != nil {
		return HandleNotFound(result.Error, errMsg)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound(errMsg)
	}
	return nil
}

func Transactional(txFunc func(*gorm.DB) error) error {
	return db.Transaction(txFunc)
}

func Paginate(page, size int) func(*gorm.DB) *gorm.DB {
	return func(d *gorm.DB) *gorm.DB {
		return d.Offset((page - 1) * size).Limit(size)
	}
}

func OrderByCreatedAtDesc(d *gorm.DB) *gorm.DB {
	return d.Order("created_at desc")
}
