package models

// SEO is the metadata block embedded in content documents.
type SEO struct {
	MetaTitle       string   `bson:"metaTitle"       json:"metaTitle"`
	MetaDescription string   `bson:"metaDescription" json:"metaDescription"`
	Keywords        []string `bson:"keywords"        json:"keywords"`
	OGImage         string   `bson:"ogImage"         json:"ogImage"`
}

// DefaultSEO is the fixed template merged under every incoming SEO payload.
func DefaultSEO() SEO {
	return SEO{
		MetaTitle:       "",
		MetaDescription: "",
		Keywords:        []string{},
		OGImage:         "",
	}
}

// SEOInput is a partial SEO payload. Nil fields were not supplied.
type SEOInput struct {
	MetaTitle       *string  `json:"metaTitle"`
	MetaDescription *string  `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
	OGImage         *string  `json:"ogImage"`
}

// MergeSEO shallow-merges a partial payload over the template: template values
// survive for every key the payload did not supply, supplied keys win.
func MergeSEO(template SEO, in *SEOInput) SEO {
	merged := template
	if merged.Keywords == nil {
		merged.Keywords = []string{}
	}
	if in == nil {
		return merged
	}
	if in.MetaTitle != nil {
		merged.MetaTitle = *in.MetaTitle
	}
	if in.MetaDescription != nil {
		merged.MetaDescription = *in.MetaDescription
	}
	if in.Keywords != nil {
		merged.Keywords = in.Keywords
	}
	if in.OGImage != nil {
		merged.OGImage = *in.OGImage
	}
	return merged
}
