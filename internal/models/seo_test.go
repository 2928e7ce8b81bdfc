package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestMergeSEO(t *testing.T) {
	t.Run("nil input keeps full template", func(t *testing.T) {
		merged := MergeSEO(DefaultSEO(), nil)
		assert.Equal(t, "", merged.MetaTitle)
		assert.Equal(t, "", merged.MetaDescription)
		assert.Equal(t, []string{}, merged.Keywords)
		assert.Equal(t, "", merged.OGImage)
	})

	t.Run("supplied keys win, missing keys stay defaulted", func(t *testing.T) {
		in := &SEOInput{MetaDescription: strptr("A look at the Met Gala")}
		merged := MergeSEO(DefaultSEO(), in)
		assert.Equal(t, "", merged.MetaTitle)
		assert.Equal(t, "A look at the Met Gala", merged.MetaDescription)
	})

	t.Run("explicit empty string overrides template", func(t *testing.T) {
		template := SEO{MetaTitle: "fallback title"}
		merged := MergeSEO(template, &SEOInput{MetaTitle: strptr("")})
		assert.Equal(t, "", merged.MetaTitle)
	})

	t.Run("keywords replace, never append", func(t *testing.T) {
		template := SEO{Keywords: []string{"celebrity"}}
		merged := MergeSEO(template, &SEOInput{Keywords: []string{"fashion", "red carpet"}})
		assert.Equal(t, []string{"fashion", "red carpet"}, merged.Keywords)
	})

	t.Run("template is not mutated", func(t *testing.T) {
		template := DefaultSEO()
		_ = MergeSEO(template, &SEOInput{MetaTitle: strptr("changed")})
		assert.Equal(t, "", template.MetaTitle)
	})
}
