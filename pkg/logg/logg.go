package logg

const (
	Layer     = "layer"
	Operation = "operation"
	URL       = "url"
	Selector  = "selector"
	Tag       = "tag"
	Tier      = "tier"
	FormIndex = "form_index"
	Count     = "count"
	RunID     = "run_id"
	File      = "file"
)
