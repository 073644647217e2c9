package dto

// UploadResponse - информация о сохраненном файле
type UploadResponse struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Kind         string `json:"kind"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
}
