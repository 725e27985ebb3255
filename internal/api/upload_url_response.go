package api

// UploadURLResponse hands the client a presigned PUT target plus the
// public URL to store as the product's imageUrl once the PUT succeeds.
// swagger:model api.UploadURLResponse
type UploadURLResponse struct {
	Key       string `json:"key" example:"products/2025/05/01/5f4c…"`
	UploadURL string `json:"uploadUrl"`
	ImageURL  string `json:"imageUrl"`
}
