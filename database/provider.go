package database

import (
	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

type EntityProvider[E any] func(db *gorm.DB) model.Provider[E]

type EntitySliceProvider[E any] func(db *gorm.DB) model.Provider[[]E]

func Query[E any](db *gorm.DB, query interface{}) model.Provider[E] {
	return func() (E, error) {
		var result E
		err := db.Where(query).First(&result).Error
		return result, err
	}
}

func SliceQuery[E any](db *gorm.DB, query interface{}) model.Provider[[]E] {
	return func() ([]E, error) {
		var results []E
		err := db.Where(query).Find(&results).Error
		return results, err
	}
}

func ModelProvider[M any, E any](db *gorm.DB) func(ep EntityProvider[E], transformer func(E) (M, error)) model.Provider[M] {
	return func(ep EntityProvider[E], transformer func(E) (M, error)) model.Provider[M] {
		return func() (M, error) {
			var zero M
			e, err := ep(db)()
			if err != nil {
				return zero, err
			}
			return transformer(e)
		}
	}
}

func ModelSliceProvider[M any, E any](db *gorm.DB) func(ep EntitySliceProvider[E], transformer func(E) (M, error)) model.Provider[[]M] {
	return func(ep EntitySliceProvider[E], transformer func(E) (M, error)) model.Provider[[]M] {
		return func() ([]M, error) {
			es, err := ep(db)()
			if err != nil {
				return nil, err
			}
			ms := make([]M, 0, len(es))
			for _, e := range es {
				m, err := transformer(e)
				if err != nil {
					return nil, err
				}
				ms = append(ms, m)
			}
			return ms, nil
		}
	}
}
