package request

type CommentRequest struct {
	Author  string `json:"author" validate:"required,min=1,max=80"`
	Message string `json:"message" validate:"required,min=1,max=1000"`
}
