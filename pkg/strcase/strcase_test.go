package strcase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/domainkit/pkg/strcase"
)

func TestToKebab(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"hello world":    "hello-world",
		"userName":       "user-name",
		"HTTPServerPort": "httpserver-port",
		"already-kebab":  "already-kebab",
		"  padded  ":     "padded",
		"":               "",
		"___":            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, strcase.ToKebab(in), "input %q", in)
	}
}

func TestToSnake(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"hello world":  "hello_world",
		"userName":     "user_name",
		"order-id":     "order_id",
		"Already_Good": "already_good",
	}
	for in, want := range cases {
		assert.Equal(t, want, strcase.ToSnake(in), "input %q", in)
	}
}

func TestToCamel(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"hello world": "helloWorld",
		"user_name":   "userName",
		"Order-ID":    "orderId",
		"single":      "single",
		"":            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, strcase.ToCamel(in), "input %q", in)
	}
}

func TestToPascal(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"hello world": "HelloWorld",
		"user_name":   "UserName",
		"order id 42": "OrderId42",
		"":            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, strcase.ToPascal(in), "input %q", in)
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello World", strcase.Title("hello world"))
	assert.Equal(t, "Straße", strcase.Title("straße"))
}

func TestTrimCasing(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", strcase.TrimLower("  HeLLo  "))
	assert.Equal(t, "HELLO", strcase.TrimUpper("  HeLLo  "))
}
