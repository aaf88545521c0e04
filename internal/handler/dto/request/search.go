package request

type SearchQuery struct {
	Q string `form:"q" binding:"max=255"`
}

type AutocompleteQuery struct {
	Q     string `form:"q" binding:"max=255"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
}
