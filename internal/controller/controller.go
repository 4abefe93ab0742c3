// Package controller holds the per-entity view controllers that back the
// list screens: they own loading/error/total state, refetch when filters
// change, and refresh the list after every successful mutation so the screen
// always shows server truth.
package controller

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// filterKey serializes a filter for change detection; equality is by value,
// not by reference.
func filterKey(filter any) string {
	key, err := json.Marshal(filter)
	if err != nil {
		return ""
	}
	return string(key)
}

// errorMessage extracts a display string from an error, falling back to a
// generic per-entity message.
func errorMessage(err error, fallback string) string {
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
