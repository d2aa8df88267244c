package page

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed assets/*
var embeddedAssets embed.FS

// StylesheetName is the embedded stylesheet file.
const StylesheetName = "quiz.css"

// AssetsFS returns the file system rooted at the embedded assets directory.
func AssetsFS() (fs.FS, error) {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return nil, fmt.Errorf("page: open embedded assets: %w", err)
	}
	return sub, nil
}

// Stylesheet returns the embedded stylesheet contents for inlining into static pages.
func Stylesheet() (string, error) {
	data, err := embeddedAssets.ReadFile("assets/" + StylesheetName)
	if err != nil {
		return "", fmt.Errorf("page: read stylesheet: %w", err)
	}
	return string(data), nil
}
