package utils

import (
	"gorm.io/gorm"
)

// ValidateResourceId checks that a record of type T with the given id exists.
// Returns ErrorRecordNotFound otherwise.
func ValidateResourceId[T any](tx *gorm.DB, id interface{}) error {
	count, err := resourceCountWhere[T](tx, "id = ?", id)
	if err != nil {
		return err
	}
	if count <= 0 {
		return ErrorRecordNotFound
	}
	return nil
}

// ValidateResourceIds checks that ALL ids exist, return ErrorRecordNotFound otherwise.
func ValidateResourceIds[T any](tx *gorm.DB, ids []int) error {
	unqIds := UniqueSlice(ids)
	if len(unqIds) == 0 {
		return nil
	}
	count, err := resourceCountWhere[T](tx, "id IN ?", unqIds)
	if err != nil {
		return err
	}
	if count != int64(len(unqIds)) {
		return ErrorRecordNotFound
	}
	return nil
}

func resourceCountWhere[T any](tx *gorm.DB, condition string, value ...interface{}) (int64, error) {
	var model T
	var count int64
	if err := tx.Session(&gorm.Session{NewDB: true}).Model(&model).Where(condition, value...).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func UniqueSlice[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
