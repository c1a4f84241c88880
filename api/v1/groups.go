// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package v1

import (
	"github.com/mantacode/lin/descriptor"
)

var (
	groupPath         = descriptor.MustTemplate("groups/{+groupId}")
	groupPostsPath    = descriptor.MustTemplate("groups/{+groupId}/posts")
	membershipPath    = descriptor.MustTemplate("people/~/group-memberships/{+groupId}")
	postPath          = descriptor.MustTemplate("posts/{+postId}")
	postCommentsPath  = descriptor.MustTemplate("posts/{+postId}/comments")
	postLikesPath     = descriptor.MustTemplate("posts/{+postId}/likes")
	postIsLikedPath   = descriptor.MustTemplate("posts/{+postId}/relation-to-viewer/is-liked")
	defaultMembership = []string{"member"}
)

// List gets the authenticated member's groups.
func List(opts ListOptions) (descriptor.Descriptor, error) {
	path := "people/~/group-memberships" + fields(opts.Fields, listFields)

	membership := opts.Membership
	if len(membership) == 0 {
		membership = defaultMembership
	}
	var q descriptor.Query
	for _, m := range membership {
		q.Add("membership-state", m)
	}
	q.AddInt("start", opts.Start)
	q.AddInt("count", opts.Count)
	return read(descriptor.Groups, path+q.Suffix(), opts.Headers), nil
}

// Recommended gets groups suggested for the authenticated member.
func Recommended(opts PageOptions) (descriptor.Descriptor, error) {
	path := "people/~/suggestions/groups" + fields(opts.Fields, recommendedFields)

	var q descriptor.Query
	q.AddInt("start", opts.Start)
	q.AddInt("count", opts.Count)
	return read(descriptor.Groups, path+q.Suffix(), opts.Headers), nil
}

// Show gets the details of a group.
func Show(groupID string, opts FieldOptions) (descriptor.Descriptor, error) {
	if groupID == "" {
		return descriptor.Descriptor{}, descriptor.Missing("show", "groupId")
	}
	path, err := expand(groupPath, "groupId", groupID)
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	return read(descriptor.Groups, path+fields(opts.Fields, showFields), opts.Headers), nil
}

// Posts gets the discussions posted to a group.
func Posts(groupID string, opts PostsOptions) (descriptor.Descriptor, error) {
	if groupID == "" {
		return descriptor.Descriptor{}, descriptor.Missing("posts", "groupId")
	}
	path, err := expand(groupPostsPath, "groupId", groupID)
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	path += fields(opts.Fields, postsFields)

	var q descriptor.Query
	q.AddInt("start", opts.Start)
	q.AddInt("count", opts.Count)
	q.AddString("order", opts.Order)
	q.AddNonZero("modified-since", opts.After)
	q.Add("category", "discussion")
	return read(descriptor.Groups, path+q.Suffix(), opts.Headers), nil
}

type membershipBody struct {
	State code `json:"membership-state"`
}

// JoinGroup makes the authenticated member a member of a group.
func JoinGroup(groupID string) (descriptor.Descriptor, error) {
	if groupID == "" {
		return descriptor.Descriptor{}, descriptor.Missing("joinGroup", "groupId")
	}
	path, err := expand(membershipPath, "groupId", groupID)
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	return writeJSON(descriptor.PUT, descriptor.Groups, path, membershipBody{State: code{Code: "member"}})
}

// LeaveGroup revokes the authenticated member's membership.
func LeaveGroup(groupID string) (descriptor.Descriptor, error) {
	if groupID == "" {
		return descriptor.Descriptor{}, descriptor.Missing("leaveGroup", "groupId")
	}
	path, err := expand(membershipPath, "groupId", groupID)
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	return descriptor.Descriptor{
		Method:   descriptor.DELETE,
		Path:     path,
		Headers:  descriptor.JSONHeaders(),
		Resource: descriptor.Groups,
	}, nil
}

type createGroupBody struct {
	Visibility         code   `json:"visibility"`
	IsOpenToNonMembers bool   `json:"isOpenToNonMembers"`
	Category           code   `json:"category"`
	Name               string `json:"name,omitempty"`
	ShortDescription   string `json:"shortDescription,omitempty"`
	Description        string `json:"description,omitempty"`
	ContactEmail       string `json:"contactEmail,omitempty"`
}

// CreateGroup creates a group.  Only the CreateGroupBody fields are
// sent; visibility defaults to hidden and category to network.
func CreateGroup(body CreateGroupBody) (descriptor.Descriptor, error) {
	out := createGroupBody{
		Visibility:         code{Code: "hidden"},
		IsOpenToNonMembers: body.IsOpenToNonMembers,
		Category:           code{Code: "network"},
		Name:               body.Name,
		ShortDescription:   body.ShortDescription,
		Description:        body.Description,
		ContactEmail:       body.ContactEmail,
	}
	if body.Visibility != "" {
		out.Visibility.Code = body.Visibility
	}
	if body.Category != "" {
		out.Category.Code = body.Category
	}
	return writeJSON(descriptor.POST, descriptor.Groups, "groups", out)
}

// PostToGroup posts a discussion to a group.  The endpoint only
// accepts XML.
func PostToGroup(groupID, title, summary string) (descriptor.Descriptor, error) {
	switch {
	case groupID == "":
		return descriptor.Descriptor{}, descriptor.Missing("postToGroup", "groupId")
	case title == "":
		return descriptor.Descriptor{}, descriptor.Missing("postToGroup", "title")
	case summary == "":
		return descriptor.Descriptor{}, descriptor.Missing("postToGroup", "summary")
	}
	path, err := expand(groupPostsPath, "groupId", groupID)
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	body := descriptor.XMLFragment("post",
		descriptor.XMLElement("title", title),
		descriptor.XMLElement("summary", summary))
	return writeXML(descriptor.Groups, path, body), nil
}

// ShowPost gets a group post.
func ShowPost(postID string, opts FieldOptions) (descriptor.Descriptor, error) {
	if postID == "" {
		return descriptor.Descriptor{}, descriptor.Missing("showPost", "postId")
	}
	path, err := expand(postPath, "postId", postID)
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	return read(descriptor.Groups, path+fields(opts.Fields, showPostFields), opts.Headers), nil
}

// PostComments gets the comments on a group post.
func PostComments(postID string, opts PageOptions) (descriptor.Descriptor, error) {
	return postPage("postComments", postCommentsPath, postCommentsFields, postID, opts)
}

// PostLikes gets the members who liked a group post.
func PostLikes(postID string, opts PageOptions) (descriptor.Descriptor, error) {
	return postPage("postLikes", postLikesPath, postLikesFields, postID, opts)
}

func postPage(op string, t *descriptor.Template, dflt, postID string, opts PageOptions) (descriptor.Descriptor, error) {
	if postID == "" {
		return descriptor.Descriptor{}, descriptor.Missing(op, "postId")
	}
	path, err := expand(t, "postId", postID)
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	path += fields(opts.Fields, dflt)

	var q descriptor.Query
	q.AddInt("start", opts.Start)
	q.AddInt("count", opts.Count)
	return read(descriptor.Groups, path+q.Suffix(), opts.Headers), nil
}

// LikePost likes a group post, or unlikes it if doLike reads as
// anything other than "true".  A nil doLike likes the post.
func LikePost(postID string, doLike interface{}) (descriptor.Descriptor, error) {
	if postID == "" {
		return descriptor.Descriptor{}, descriptor.Missing("likePost", "postId")
	}
	path, err := expand(postIsLikedPath, "postId", postID)
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	return descriptor.Descriptor{
		Method:   descriptor.PUT,
		Path:     path,
		Headers:  descriptor.JSONHeaders(),
		Body:     likeBody(doLike),
		Resource: descriptor.Groups,
	}, nil
}

// CommentOnPost comments on a group post.  The endpoint only accepts
// XML.
func CommentOnPost(postID, comment string) (descriptor.Descriptor, error) {
	switch {
	case postID == "":
		return descriptor.Descriptor{}, descriptor.Missing("commentOnPost", "postId")
	case comment == "":
		return descriptor.Descriptor{}, descriptor.Missing("commentOnPost", "comment")
	}
	path, err := expand(postCommentsPath, "postId", postID)
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	body := descriptor.XMLFragment("comment", descriptor.XMLElement("text", comment))
	return writeXML(descriptor.Groups, path, body), nil
}
