package profile

// UserPage is the client-facing profile attached 1:1 to an account.
// IsSubscribed is denormalized: it is true iff an active subscription
// exists, and is only flipped inside the subscription replace
// transaction.
type UserPage struct {
	ID           int    `json:"id"`
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Image        string `json:"image,omitempty"`
	IsSubscribed bool   `json:"is_subscribed"`

	AllergyIDs        []int `json:"allergy_ids"`
	MenuTypeIDs       []int `json:"menu_type_ids"`
	LikedRecipeIDs    []int `json:"liked_recipe_ids"`
	DislikedRecipeIDs []int `json:"disliked_recipe_ids"`
}
