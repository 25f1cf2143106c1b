package usecase

import (
	"strings"
	"unicode/utf8"

	"personal-task-management/internal/model"
	"personal-task-management/internal/project"
)

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", project.ErrEmptyName
	}
	if utf8.RuneCountInString(name) > model.ProjectNameMaxLength {
		return "", project.ErrNameTooLong
	}
	return name, nil
}

// resolveColor checks a color pair against the palette. The hex may be
// omitted; when given it must match the name.
func resolveColor(name, hex string) (model.Color, error) {
	if name == "" && hex == "" {
		return model.DefaultColor, nil
	}
	c, ok := model.LookupColor(name)
	if !ok {
		return model.Color{}, project.ErrInvalidColor
	}
	if hex != "" && !strings.EqualFold(hex, c.Hex) {
		return model.Color{}, project.ErrInvalidColor
	}
	return c, nil
}
