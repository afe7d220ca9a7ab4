package constants

import (
	"strings"
)

// Department is a teaching-department code as it appears on conventions.
//
// NOTE: the wider record-management application validates against
// INFO/GEA/HSE/MLT/TC; the conventions themselves use the set below. We keep
// the document vocabulary here and let callers reconcile.
type Department string

const (
	INFO Department = "INFO"
	GLT  Department = "GLT"
	GEA  Department = "GEA"
	TC   Department = "TC"
	MMI  Department = "MMI"
)

var allDepartments = []Department{INFO, GLT, GEA, TC, MMI}

// DepartmentStrings returns the closed vocabulary as plain strings.
func DepartmentStrings() []string {
	result := make([]string, len(allDepartments))
	for i, d := range allDepartments {
		result[i] = string(d)
	}
	return result
}

// CanonicalDepartment maps a free-text department mention to its code.
// Matches either the code itself or the spelled-out department name.
func CanonicalDepartment(input string) (Department, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}

	for _, d := range allDepartments {
		if normalized == string(d) {
			return d, true
		}
	}

	// spelled-out names, matched by containment
	synonyms := []struct {
		needle string
		dept   Department
	}{
		{"INFORMATIQUE", INFO},
		{"LOGISTIQUE", GLT},
		{"TRANSPORT", GLT},
		{"GESTION DES ENTREPRISES", GEA},
		{"COMMERCIALISATION", TC},
		{"MULTIMEDIA", MMI},
		{"MULTIMÉDIA", MMI},
	}
	for _, s := range synonyms {
		if strings.Contains(normalized, s.needle) {
			return s.dept, true
		}
	}
	return "", false
}

// Level is a program-level code (licence/master year).
type Level string

const (
	B1 Level = "B1"
	B2 Level = "B2"
	B3 Level = "B3"
	M1 Level = "M1"
	M2 Level = "M2"
)

var allLevels = []Level{B1, B2, B3, M1, M2}

// LevelStrings returns the closed vocabulary as plain strings.
func LevelStrings() []string {
	result := make([]string, len(allLevels))
	for i, l := range allLevels {
		result[i] = string(l)
	}
	return result
}

// IsLevel reports whether input is one of the known level codes.
func IsLevel(input string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	for _, l := range allLevels {
		if normalized == string(l) {
			return true
		}
	}
	return false
}
