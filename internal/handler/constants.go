package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the dashboard.
	RouteRoot = "/"
	// RouteNews is the news section.
	RouteNews = "/news"
	// RouteStories is the stories section.
	RouteStories = "/stories"
	// RouteFatwas is the fatwas section.
	RouteFatwas = "/fatwas"
	// RouteFalcons is the falcons section.
	RouteFalcons = "/falcons"
	// RouteHealth is the health check endpoint.
	RouteHealth = "/health"
	// RouteStatic serves embedded assets.
	RouteStatic = "/static"

	// RouteSuffixNew is the suffix for create forms.
	RouteSuffixNew = "/new"
	// RouteSuffixPreview is the suffix for draft previews.
	RouteSuffixPreview = "/preview"
	// RouteSuffixEdit is the suffix for edit forms.
	RouteSuffixEdit = "/edit"
	// RouteSuffixDelete is the suffix for deletions.
	RouteSuffixDelete = "/delete"

	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"
)

// Form field names shared by the create forms.
const (
	FieldDraftID    = "draft_id"
	FieldAction     = "action"
	FieldStatus     = "status"
	FieldImage      = "image"
	FieldClearImage = "clear_image"
	FieldQuery      = "q"
)

// Submit button values.
const (
	ActionDraft   = "draft"
	ActionPublish = "publish"
)

// Template names.
const (
	TemplateDashboard = "admin/dashboard"
	TemplatePreview   = "admin/preview"
	TemplateNotFound  = "admin/not_found"
)

// Log messages reused across handlers.
const (
	LogRenderFailed   = "render error"
	LogActivityFailed = "failed to record activity"
)
