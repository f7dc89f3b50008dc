package domain

// Post represents a single Instagram post inside a profile's recent-post list.
// JSON field names follow the public scrape contract.
type Post struct {
	ShortCode     string `json:"shortCode,omitempty"`
	Caption       string `json:"caption,omitempty"`
	LikesCount    int    `json:"likesCount"`
	CommentsCount int    `json:"commentsCount"`
	Timestamp     string `json:"timestamp,omitempty"`
	DisplayURL    string `json:"displayUrl,omitempty"`
	Type          string `json:"type,omitempty"`
	URL           string `json:"url,omitempty"`
}

// Profile is the normalized representation of a scraped Instagram account.
// Constructed fresh on every fetch, never persisted.
type Profile struct {
	Username       string `json:"username"`
	ProfileURL     string `json:"profileUrl,omitempty"`
	FullName       string `json:"fullName,omitempty"`
	Biography      string `json:"biography,omitempty"`
	FollowersCount int    `json:"followersCount"`
	FollowingCount int    `json:"followingCount"`
	PostsCount     int    `json:"postsCount"`
	IsPrivate      bool   `json:"isPrivate"`
	IsVerified     bool   `json:"isVerified"`
	ProfilePicURL  string `json:"profilePicUrl,omitempty"`
	LatestPosts    []Post `json:"latestPosts"`
}

// ScrapeResult is the generic profile-collection response contract. Business
// failures (no data, upstream error) are expressed as Success=false with an
// empty Data slice rather than an HTTP error.
type ScrapeResult struct {
	Success         bool      `json:"success"`
	ProfilesScraped int       `json:"profiles_scraped"`
	TotalItems      int       `json:"total_items"`
	Data            []Profile `json:"data"`
	Message         string    `json:"message,omitempty"`
}

// PostsResult is the lighter-weight posts-only response contract.
type PostsResult struct {
	Success    bool   `json:"success"`
	Username   string `json:"username"`
	ProfileURL string `json:"profileUrl"`
	PostsCount int    `json:"posts_count"`
	Posts      []Post `json:"posts"`
}

// PostSample is the subset of a post fed into insight generation.
type PostSample struct {
	Caption  string `json:"caption"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
}

// ProfileSummary is the profile-derived input of the insight analyzer.
type ProfileSummary struct {
	DisplayName    string       `json:"display_name"`
	Username       string       `json:"username"`
	Bio            string       `json:"bio"`
	FollowerCount  int          `json:"follower_count"`
	FollowingCount int          `json:"following_count"`
	PostCount      int          `json:"post_count"`
	Posts          []PostSample `json:"posts"`
}

// SummarizeProfile reduces a scraped profile to the analyzer input, sampling at
// most maxPosts recent posts.
func SummarizeProfile(p Profile, maxPosts int) ProfileSummary {
	displayName := p.FullName
	if displayName == "" {
		displayName = p.Username
	}

	summary := ProfileSummary{
		DisplayName:    displayName,
		Username:       p.Username,
		Bio:            p.Biography,
		FollowerCount:  p.FollowersCount,
		FollowingCount: p.FollowingCount,
		PostCount:      p.PostsCount,
	}

	for i, post := range p.LatestPosts {
		if i >= maxPosts {
			break
		}
		summary.Posts = append(summary.Posts, PostSample{
			Caption:  post.Caption,
			Likes:    post.LikesCount,
			Comments: post.CommentsCount,
		})
	}

	return summary
}
