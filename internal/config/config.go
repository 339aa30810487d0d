// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/SemTiOne/personal-finance-tracker/internal/keyword"
	"github.com/SemTiOne/personal-finance-tracker/internal/model"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	// First expand tilde if present
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	// Then expand environment variables
	return os.ExpandEnv(path)
}

// LoadKeywordIndex builds the keyword index from the defaults plus any
// user-configured extensions. The config file may carry:
//
//	keywords:
//	  Food & Dining: ["trader joe"]
//	  Pets: ["veterinary", "pet store"]
//
// Keywords for categories unknown to the default index register them as
// expense categories at the lowest tie-break priority.
func LoadKeywordIndex() *keyword.Index {
	index := keyword.DefaultIndex()

	// Viper lower-cases map keys, so map them back onto the canonical
	// category names before extending the index.
	canonical := make(map[string]string)
	for _, name := range index.Categories() {
		canonical[strings.ToLower(name)] = name
	}

	extra := viper.GetStringMapStringSlice("keywords")
	for category, keywords := range extra {
		if name, ok := canonical[strings.ToLower(category)]; ok {
			category = name
		}
		index.AddCategory(category, model.CategoryTypeExpense, keywords...)
	}

	return index
}
