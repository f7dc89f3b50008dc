package web

import (
	"time"

	"github.com/kapu/insta-insight-go/internal/domain"
)

// ProductPost is a post entry in the flattened product-frontend contract.
type ProductPost struct {
	ID        string `json:"id"`
	Caption   string `json:"caption"`
	Likes     int    `json:"likes"`
	Comments  int    `json:"comments"`
	Timestamp string `json:"timestamp"`
	ImageURL  string `json:"image_url"`
	URL       string `json:"url"`
}

// ProductMetadata carries the per-response status block of the product contract.
type ProductMetadata struct {
	Success      bool   `json:"success"`
	ScrapedAt    string `json:"scraped_at,omitempty"`
	Platform     string `json:"platform,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// ProductProfile is the flattened single-profile shape the product frontend
// consumes. It is a second serialization of domain.Profile, not a second model.
type ProductProfile struct {
	DisplayName     string          `json:"display_name"`
	Username        string          `json:"username"`
	Platform        string          `json:"platform"`
	Bio             string          `json:"bio"`
	FollowerCount   int             `json:"follower_count"`
	FollowingCount  int             `json:"following_count"`
	PostCount       int             `json:"post_count"`
	ProfileImageURL string          `json:"profile_image_url"`
	IsVerified      bool            `json:"is_verified"`
	URL             string          `json:"url"`
	Posts           []ProductPost   `json:"posts"`
	Metadata        ProductMetadata `json:"metadata"`
}

// ProductProfileFromDomain flattens a scraped profile into the product
// contract, capping posts at maxPosts.
func ProductProfileFromDomain(p domain.Profile, maxPosts int) ProductProfile {
	displayName := p.FullName
	if displayName == "" {
		displayName = p.Username
	}

	posts := make([]ProductPost, 0, len(p.LatestPosts))
	for i, post := range p.LatestPosts {
		if maxPosts > 0 && i >= maxPosts {
			break
		}
		posts = append(posts, ProductPost{
			ID:        post.ShortCode,
			Caption:   post.Caption,
			Likes:     post.LikesCount,
			Comments:  post.CommentsCount,
			Timestamp: post.Timestamp,
			ImageURL:  post.DisplayURL,
			URL:       post.URL,
		})
	}

	return ProductProfile{
		DisplayName:     displayName,
		Username:        p.Username,
		Platform:        "instagram",
		Bio:             p.Biography,
		FollowerCount:   p.FollowersCount,
		FollowingCount:  p.FollowingCount,
		PostCount:       p.PostsCount,
		ProfileImageURL: p.ProfilePicURL,
		IsVerified:      p.IsVerified,
		URL:             domain.UsernameToURL(p.Username),
		Posts:           posts,
		Metadata: ProductMetadata{
			Success:   true,
			ScrapedAt: time.Now().Format(time.RFC3339),
			Platform:  "instagram",
		},
	}
}

// ProductFailure is the product-contract shape for an upstream failure; the
// frontend keys off metadata.success rather than the HTTP status.
func ProductFailure(message string) ProductProfile {
	return ProductProfile{
		Platform: "instagram",
		Posts:    []ProductPost{},
		Metadata: ProductMetadata{
			Success:      false,
			ErrorMessage: message,
		},
	}
}
