package dto

type ContinentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
