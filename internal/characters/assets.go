package characters

import (
	"fmt"

	"github.com/parkdui/LG-Thingo/internal/models"
)

// ImagePath returns the floating product image shown on the chat view.
func ImagePath(group models.ProductGroup) string {
	if group == "" {
		return ""
	}
	return fmt.Sprintf("/static/images/%s.png", group)
}

// VideoPath returns the themed result video for a product group and verdict.
func VideoPath(group models.ProductGroup, success bool) string {
	if group == "" {
		return ""
	}
	outcome := "fail"
	if success {
		outcome = "success"
	}
	return fmt.Sprintf("/static/videos/%s_%s.mp4", group, outcome)
}
