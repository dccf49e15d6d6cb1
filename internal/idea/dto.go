package idea

import "strings"

type IdeaRequest struct {
	Theme string `json:"theme" validate:"required"`
}

func (r *IdeaRequest) Normalize() {
	r.Theme = strings.TrimSpace(r.Theme)
}

type IdeaResponse struct {
	Ideas []string `json:"ideas"`
}
