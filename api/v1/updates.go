// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package v1

import (
	"strings"

	"github.com/mantacode/lin/descriptor"
)

var (
	updatesPath        = descriptor.MustTemplate("people/{+id}/network/updates")
	updateLikesPath    = descriptor.MustTemplate("people/~/network/updates/key={+key}/likes")
	updateCommentsPath = descriptor.MustTemplate("people/~/network/updates/key={+key}/update-comments")
	updateIsLikedPath  = descriptor.MustTemplate("people/~/network/updates/key={+key}/is-liked")
)

// Updates gets network updates of the given comma-separated types,
// e.g. "CONN,PICT,SHAR".  Another member's updates need opts.Scope
// "self".
func Updates(types string, opts UpdatesOptions) (descriptor.Descriptor, error) {
	if types == "" {
		return descriptor.Descriptor{}, descriptor.Missing("updates", "types")
	}
	path, err := expand(updatesPath, "id", orSelf(opts.ID))
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	path += fields(opts.Fields, ":("+standardUpdateFields+")")

	var q descriptor.Query
	for _, t := range strings.Split(types, ",") {
		q.Add("type", t)
	}
	q.AddNonZeroInt("start", opts.Start)
	q.AddNonZeroInt("count", opts.Count)
	q.AddString("scope", opts.Scope)
	q.AddNonZero("before", opts.Before)
	q.AddNonZero("after", opts.After)
	return read(descriptor.Updates, path+q.Suffix(), opts.Headers), nil
}

// Likes gets the likes on a network update.
func Likes(key string, opts PageOptions) (descriptor.Descriptor, error) {
	return updatePage("likes", updateLikesPath,
		":(person:("+StandardPersonFields()+"))", key, opts)
}

// Comments gets the comments on a network update.
func Comments(key string, opts PageOptions) (descriptor.Descriptor, error) {
	return updatePage("comments", updateCommentsPath,
		":(id,sequence-number,comment,timestamp,person:("+StandardPersonFields()+",api-standard-profile-request))", key, opts)
}

func updatePage(op string, t *descriptor.Template, dflt, key string, opts PageOptions) (descriptor.Descriptor, error) {
	if key == "" {
		return descriptor.Descriptor{}, descriptor.Missing(op, "id")
	}
	path, err := expand(t, "key", key)
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	path += fields(opts.Fields, dflt)

	var q descriptor.Query
	q.AddNonZeroInt("start", opts.Start)
	q.AddNonZeroInt("count", opts.Count)
	return read(descriptor.Updates, path+q.Suffix(), opts.Headers), nil
}

// Like likes a network update, or unlikes it if doLike reads as
// anything other than "true".  A nil doLike likes the update.
func Like(key string, doLike interface{}) (descriptor.Descriptor, error) {
	if key == "" {
		return descriptor.Descriptor{}, descriptor.Missing("like", "id")
	}
	path, err := expand(updateIsLikedPath, "key", key)
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	return descriptor.Descriptor{
		Method:   descriptor.PUT,
		Path:     path,
		Headers:  descriptor.JSONHeaders(),
		Body:     likeBody(doLike),
		Resource: descriptor.Updates,
	}, nil
}

type commentBody struct {
	Comment string `json:"comment"`
}

// Comment comments on a network update.
func Comment(key, comment string) (descriptor.Descriptor, error) {
	switch {
	case key == "":
		return descriptor.Descriptor{}, descriptor.Missing("comment", "id")
	case comment == "":
		return descriptor.Descriptor{}, descriptor.Missing("comment", "comment")
	}
	path, err := expand(updateCommentsPath, "key", key)
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	return writeJSON(descriptor.POST, descriptor.Updates, path, commentBody{Comment: comment})
}

type shareContent struct {
	Title             string `json:"title,omitempty"`
	SubmittedURL      string `json:"submitted-url,omitempty"`
	SubmittedImageURL string `json:"submitted-image-url,omitempty"`
	Description       string `json:"description,omitempty"`
	ArticleID         string `json:"article-id,omitempty"`
}

type shareAttribution struct {
	Share struct {
		ID string `json:"id"`
	} `json:"share"`
}

type shareBody struct {
	Visibility  code              `json:"visibility"`
	Comment     string            `json:"comment,omitempty"`
	Content     *shareContent     `json:"content,omitempty"`
	Attribution *shareAttribution `json:"attribution,omitempty"`
}

// Share posts a SHAR update: a comment, a link with a title, or a
// re-share of existing content.
func Share(opts ShareOptions) (descriptor.Descriptor, error) {
	link := opts.ContentTitle != "" && opts.ContentURL != ""
	if opts.Comment == "" && !link && opts.ContentID == "" {
		return descriptor.Descriptor{}, descriptor.Missing("share", "content")
	}

	path := "people/~/shares"
	if isTrue(opts.Twitter, false) {
		path += "?twitter-post=true"
	}

	body := shareBody{Visibility: code{Code: "anyone"}, Comment: opts.Comment}
	if opts.Visibility == "connections" {
		body.Visibility.Code = "connections-only"
	}
	switch {
	case link:
		body.Content = &shareContent{
			Title:        opts.ContentTitle,
			SubmittedURL: opts.ContentURL,
			Description:  opts.Description,
		}
		if opts.ContentImage != "" {
			body.Content.SubmittedImageURL = UnwrapImageURL(opts.ContentImage)
		}
	case opts.ContentID != "":
		body.Attribution = &shareAttribution{}
		body.Attribution.Share.ID = opts.ContentID
	case opts.ArticleID != "":
		body.Content = &shareContent{ArticleID: opts.ArticleID}
	}
	return writeJSON(descriptor.POST, descriptor.Updates, path, body)
}
