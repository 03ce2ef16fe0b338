// Package strcase converts strings between naming conventions (kebab-case,
// snake_case, camelCase, PascalCase, Title Case). Word boundaries are
// detected at non-alphanumeric runs and at lower-to-upper transitions, so
// both "user name" and "userName" split the same way.
package strcase
