package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/spice-catalog/internal/catalog"
	"github.com/Veraticus/spice-catalog/internal/common"
	"github.com/Veraticus/spice-catalog/internal/config"
	"github.com/Veraticus/spice-catalog/internal/model"
	"github.com/spf13/viper"
)

// catalogPath returns the configured catalog file with ~ and $VARS expanded.
func catalogPath() string {
	return config.ResolvePath(viper.GetString("catalog.path"), defaultCatalogPath)
}

// loadCatalog loads the configured catalog against fresh counters.
func loadCatalog(ctx context.Context, opts ...catalog.Option) ([]*model.Category, *model.Counters, error) {
	counters := model.NewCounters()
	opts = append([]catalog.Option{catalog.WithCounters(counters)}, opts...)

	path := catalogPath()
	categories, err := catalog.LoadCategories(ctx, path, opts...)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, common.NewUserError(fmt.Sprintf("catalog file %s does not exist", path), err)
		}
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return categories, counters, nil
}

// findCategory looks a category up by name or returns a user-facing error.
func findCategory(categories []*model.Category, name string) (*model.Category, error) {
	category := model.FindCategory(categories, name)
	if category == nil {
		return nil, fmt.Errorf("category %q not found", name)
	}
	return category, nil
}

// errorMessage prefers the user-facing message of a UserError.
func errorMessage(err error) string {
	var userErr *common.UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}
