// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package v1

// Int returns a pointer to n, for the optional pagination fields.
func Int(n int) *int {
	return &n
}

// FieldOptions holds the overrides every read operation accepts.
type FieldOptions struct {
	// Fields replaces the default field-selection expression,
	// e.g. ":(id,name)".  It is used verbatim.
	Fields string `mapstructure:"fields"`

	// Headers, if non-nil, replaces the default header set.
	Headers map[string]string `mapstructure:"headers"`
}

// ProfileOptions configures Profile.  A zero Start or Count is not
// sent.
type ProfileOptions struct {
	FieldOptions `mapstructure:",squash"`

	// ID is the member id; the authenticated member if empty.
	ID string `mapstructure:"id"`

	// AuthToken is required to view profiles outside the
	// member's network; search results supply it.
	AuthToken string `mapstructure:"authToken"`

	Start *int `mapstructure:"start"`
	Count *int `mapstructure:"count"`
}

// ConnectionsOptions configures Connections.
type ConnectionsOptions struct {
	FieldOptions `mapstructure:",squash"`

	ID    string `mapstructure:"id"`
	Start *int   `mapstructure:"start"`
	Count *int   `mapstructure:"count"`

	// Since is a millisecond timestamp; only connections
	// modified after it are returned.
	Since int64 `mapstructure:"since"`

	// Modified is one of "new", "updated" or "new-or-updated".
	Modified string `mapstructure:"modified"`
}

// SearchOptions configures Search.  String values are URI-escaped;
// CurrentCompany, CurrentTitle and CurrentSchool take "true" or
// "false".
type SearchOptions struct {
	FieldOptions `mapstructure:",squash"`

	Keywords       string `mapstructure:"keywords"`
	FirstName      string `mapstructure:"firstName"`
	LastName       string `mapstructure:"lastName"`
	CompanyName    string `mapstructure:"companyName"`
	CurrentCompany string `mapstructure:"currentCompany"`
	Title          string `mapstructure:"title"`
	CurrentTitle   string `mapstructure:"currentTitle"`
	SchoolName     string `mapstructure:"schoolName"`
	CurrentSchool  string `mapstructure:"currentSchool"`
	CountryCode    string `mapstructure:"countryCode"`
	PostalCode     string `mapstructure:"postalCode"`
	Distance       int    `mapstructure:"distance"`
	Start          *int   `mapstructure:"start"`
	Count          *int   `mapstructure:"count"`

	// Sort is one of connections, recommenders, distance or
	// relevance.
	Sort string `mapstructure:"sort"`

	// NetworkOptions is a network facet like "F,S,O".
	NetworkOptions string `mapstructure:"networkOptions"`
}

// ListOptions configures List.
type ListOptions struct {
	FieldOptions `mapstructure:",squash"`

	// Membership lists membership states to include: "owner",
	// "member" or "manager".  Defaults to member only.
	Membership []string `mapstructure:"membership"`

	Start *int `mapstructure:"start"`
	Count *int `mapstructure:"count"`
}

// PageOptions configures the simple paged reads.
type PageOptions struct {
	FieldOptions `mapstructure:",squash"`

	Start *int `mapstructure:"start"`
	Count *int `mapstructure:"count"`
}

// PostsOptions configures Posts.
type PostsOptions struct {
	FieldOptions `mapstructure:",squash"`

	Start *int `mapstructure:"start"`
	Count *int `mapstructure:"count"`

	// Order is the sort order; the API defaults to recency.
	Order string `mapstructure:"order"`

	// After is a timestamp; only posts modified since are
	// returned.
	After int64 `mapstructure:"after"`
}

// CreateGroupBody holds the allow-listed fields of a new group.
// Category and Visibility are codes, e.g. "network" or "hidden".
type CreateGroupBody struct {
	Name               string `mapstructure:"name"`
	Category           string `mapstructure:"category"`
	ShortDescription   string `mapstructure:"shortDescription"`
	Description        string `mapstructure:"description"`
	ContactEmail       string `mapstructure:"contactEmail"`
	Visibility         string `mapstructure:"visibility"`
	IsOpenToNonMembers bool   `mapstructure:"isOpenToNonMembers"`
}

// UpdatesOptions configures Updates.
type UpdatesOptions struct {
	FieldOptions `mapstructure:",squash"`

	// ID selects another member's feed; that also requires
	// Scope "self".
	ID    string `mapstructure:"id"`
	Start *int   `mapstructure:"start"`
	Count *int   `mapstructure:"count"`

	// Scope "self" returns updates the member sent.
	Scope  string `mapstructure:"scope"`
	Before int64  `mapstructure:"before"`
	After  int64  `mapstructure:"after"`
}

// ShareOptions configures Share.  At least one of Comment,
// ContentTitle together with ContentURL, or ContentID is required.
type ShareOptions struct {
	// Twitter also posts to the member's twitter stream when it
	// reads as "true".
	Twitter interface{} `mapstructure:"twitter"`

	// Visibility is "connections" or "anyone" (the default).
	Visibility string `mapstructure:"visibility"`

	Comment      string `mapstructure:"comment"`
	ContentTitle string `mapstructure:"contentTitle"`
	ContentURL   string `mapstructure:"contentUrl"`

	// ContentImage may be a media.linkedin.com proxy URL; the
	// original image URL is recovered from it.
	ContentImage string `mapstructure:"contentImage"`
	Description  string `mapstructure:"description"`

	// ContentID re-shares an existing share.
	ContentID string `mapstructure:"contentId"`
	ArticleID string `mapstructure:"articleId"`
}

// TopicOptions configures the news topic reads.  Zero limits take
// the API defaults.
type TopicOptions struct {
	FieldOptions `mapstructure:",squash"`

	Start *int `mapstructure:"start"`
	Count *int `mapstructure:"count"`

	// MaxSharedByPeopleDegree defaults to 1.
	MaxSharedByPeopleDegree int `mapstructure:"maxSharedByPeopleDegree"`

	// MaxSharedByPeopleCount limits the sharers listed per
	// article; defaults to 1.
	MaxSharedByPeopleCount int `mapstructure:"maxSharedByPeopleCount"`

	// MaxArticles limits articles per story; defaults to 0.
	MaxArticles int `mapstructure:"maxArticles"`

	// MaxStories limits stories per topic; defaults to 100.
	MaxStories int `mapstructure:"maxStories"`
}

// SharesOptions configures Shares.
type SharesOptions struct {
	Headers map[string]string `mapstructure:"headers"`

	Count *int `mapstructure:"count"`

	// After is a millisecond timestamp.
	After int64 `mapstructure:"after"`
}
