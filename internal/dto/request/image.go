package request

// UploadImageRequest carries one file decoded from a multipart form.
// Handlers fill it; no framework types cross into the service layer.
type UploadImageRequest struct {
	FileName    string `validate:"required"`
	ContentType string
	Data        []byte `validate:"required"`
	Tag         string
	Type        string
	Folder      string
}

// PageRequest is a zero-based page over the image catalog.
type PageRequest struct {
	Page int `validate:"min=0"`
	Size int `validate:"min=1,max=100"`
}

func (p PageRequest) Offset() int {
	if p.Page < 0 {
		return 0
	}
	return p.Page * p.Size
}

func (p PageRequest) Limit() int {
	if p.Size < 1 {
		return 10
	}
	if p.Size > 100 {
		return 100
	}
	return p.Size
}
