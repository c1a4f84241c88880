// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package apitest provides generic functional tests for the
// api.Builder interface.  A typical implementation test needs to wrap
// Suite to supply its builder:
//
//	package mybuilder
//
//	import (
//	        "testing"
//	        "github.com/mantacode/lin/api/apitest"
//	        "github.com/stretchr/testify/suite"
//	)
//
//	type Suite struct{
//	        apitest.Suite
//	}
//
//	func (s *Suite) SetupSuite() {
//	        s.Builder = New()
//	}
//
//	func TestBuilder(t *testing.T) {
//	        suite.Run(t, &Suite{})
//	}
package apitest

import (
	"github.com/mantacode/lin/api"
	"github.com/mantacode/lin/api/v1"
	"github.com/mantacode/lin/descriptor"
	"github.com/stretchr/testify/suite"
)

// Suite is the generic api.Builder test suite.
type Suite struct {
	suite.Suite

	// Builder is the implementation under test.  It is set by
	// importing packages.
	Builder api.Builder
}

// Case is one named build and the builder call it must match.
type Case struct {
	Resource  string
	Operation string
	Args      []string
	Options   map[string]interface{}
	Expected  func() (descriptor.Descriptor, error)
}

// Cases are the conformance cases: one or more per operation.
// Option values are given the way a query string would carry them.
var Cases = []Case{
	{"people", "profile", nil, map[string]interface{}{"id": "15003820", "authToken": "NAME:Yc02"},
		func() (descriptor.Descriptor, error) {
			return v1.Profile(v1.ProfileOptions{ID: "15003820", AuthToken: "NAME:Yc02"})
		}},
	{"peopleAPI", "connections", nil, map[string]interface{}{"start": "0", "count": "10", "since": "1302819203000"},
		func() (descriptor.Descriptor, error) {
			return v1.Connections(v1.ConnectionsOptions{Start: v1.Int(0), Count: v1.Int(10), Since: 1302819203000})
		}},
	{"people", "search", nil, map[string]interface{}{"keywords": "Alex Zoff", "networkOptions": "F,S,O"},
		func() (descriptor.Descriptor, error) {
			return v1.Search(v1.SearchOptions{Keywords: "Alex Zoff", NetworkOptions: "F,S,O"})
		}},
	{"groups", "list", nil, map[string]interface{}{"count": "25"},
		func() (descriptor.Descriptor, error) {
			return v1.List(v1.ListOptions{Count: v1.Int(25)})
		}},
	{"groups", "recommended", nil, map[string]interface{}{"count": "5"},
		func() (descriptor.Descriptor, error) {
			return v1.Recommended(v1.PageOptions{Count: v1.Int(5)})
		}},
	{"groups", "show", []string{"547033"}, map[string]interface{}{"fields": ":(id,name)"},
		func() (descriptor.Descriptor, error) {
			return v1.Show("547033", v1.FieldOptions{Fields: ":(id,name)"})
		}},
	{"groups", "posts", []string{"547033"}, map[string]interface{}{"after": "1323726382", "count": "10"},
		func() (descriptor.Descriptor, error) {
			return v1.Posts("547033", v1.PostsOptions{After: 1323726382, Count: v1.Int(10)})
		}},
	{"groups", "showPost", []string{"g-1793367-S-4994574"}, nil,
		func() (descriptor.Descriptor, error) {
			return v1.ShowPost("g-1793367-S-4994574", v1.FieldOptions{})
		}},
	{"groups", "postComments", []string{"g-1793367-S-4994574"}, map[string]interface{}{"count": "10"},
		func() (descriptor.Descriptor, error) {
			return v1.PostComments("g-1793367-S-4994574", v1.PageOptions{Count: v1.Int(10)})
		}},
	{"groups", "postLikes", []string{"g-1793367-S-4994574"}, nil,
		func() (descriptor.Descriptor, error) {
			return v1.PostLikes("g-1793367-S-4994574", v1.PageOptions{})
		}},
	{"groups", "joinGroup", []string{"547033"}, nil,
		func() (descriptor.Descriptor, error) {
			return v1.JoinGroup("547033")
		}},
	{"groups", "leaveGroup", []string{"547033"}, nil,
		func() (descriptor.Descriptor, error) {
			return v1.LeaveGroup("547033")
		}},
	{"groups", "createGroup", nil, map[string]interface{}{"name": "myGroup", "isOpenToNonMembers": "true"},
		func() (descriptor.Descriptor, error) {
			return v1.CreateGroup(v1.CreateGroupBody{Name: "myGroup", IsOpenToNonMembers: true})
		}},
	{"groups", "postToGroup", []string{"547033", "T", "S"}, nil,
		func() (descriptor.Descriptor, error) {
			return v1.PostToGroup("547033", "T", "S")
		}},
	{"groups", "likePost", []string{"X"}, nil,
		func() (descriptor.Descriptor, error) {
			return v1.LikePost("X", nil)
		}},
	{"groups", "likePost", []string{"X", "false"}, nil,
		func() (descriptor.Descriptor, error) {
			return v1.LikePost("X", false)
		}},
	{"groups", "commentOnPost", []string{"g-1", "Ship it."}, nil,
		func() (descriptor.Descriptor, error) {
			return v1.CommentOnPost("g-1", "Ship it.")
		}},
	{"updates", "updates", []string{"CONN,SHAR"}, map[string]interface{}{"count": "10", "scope": "self"},
		func() (descriptor.Descriptor, error) {
			return v1.Updates("CONN,SHAR", v1.UpdatesOptions{Count: v1.Int(10), Scope: "self"})
		}},
	{"updates", "likes", []string{"UNIU-1-2-SHARE"}, map[string]interface{}{"count": "5"},
		func() (descriptor.Descriptor, error) {
			return v1.Likes("UNIU-1-2-SHARE", v1.PageOptions{Count: v1.Int(5)})
		}},
	{"updates", "comments", []string{"UNIU-1-2-SHARE"}, nil,
		func() (descriptor.Descriptor, error) {
			return v1.Comments("UNIU-1-2-SHARE", v1.PageOptions{})
		}},
	{"updates", "like", []string{"UNIU-1-2-SHARE", "true"}, nil,
		func() (descriptor.Descriptor, error) {
			return v1.Like("UNIU-1-2-SHARE", true)
		}},
	{"updates", "comment", []string{"UNIU-1-2-SHARE", "This is so cool!"}, nil,
		func() (descriptor.Descriptor, error) {
			return v1.Comment("UNIU-1-2-SHARE", "This is so cool!")
		}},
	{"updates", "share", nil, map[string]interface{}{"comment": "hi"},
		func() (descriptor.Descriptor, error) {
			return v1.Share(v1.ShareOptions{Comment: "hi"})
		}},
	{"news", "topNews", nil, nil,
		func() (descriptor.Descriptor, error) {
			return v1.TopNews(v1.TopicOptions{})
		}},
	{"news", "sharedNews", nil, map[string]interface{}{"maxStories": "10"},
		func() (descriptor.Descriptor, error) {
			return v1.SharedNews(v1.TopicOptions{MaxStories: 10})
		}},
	{"news", "topicNews", []string{"eyJicmVlZCI6IlRvcCJ9"}, nil,
		func() (descriptor.Descriptor, error) {
			return v1.TopicNews("eyJicmVlZCI6IlRvcCJ9", v1.TopicOptions{})
		}},
	{"news", "followedTopics", nil, map[string]interface{}{"count": "10"},
		func() (descriptor.Descriptor, error) {
			return v1.FollowedTopics(v1.PageOptions{Count: v1.Int(10)})
		}},
	{"news", "article", []string{"5562792952759058434"}, nil,
		func() (descriptor.Descriptor, error) {
			return v1.Article("5562792952759058434", v1.FieldOptions{})
		}},
	{"news", "shares", []string{"5562792952759058434"}, map[string]interface{}{"count": "5"},
		func() (descriptor.Descriptor, error) {
			return v1.Shares("5562792952759058434", v1.SharesOptions{Count: v1.Int(5)})
		}},
}

// TestCases checks every conformance case against its direct
// builder call.
func (s *Suite) TestCases() {
	for _, c := range Cases {
		expected, err := c.Expected()
		if !s.NoError(err, "%s.%s", c.Resource, c.Operation) {
			continue
		}
		actual, err := s.Builder.Build(c.Resource, c.Operation, c.Args, c.Options)
		if s.NoError(err, "%s.%s", c.Resource, c.Operation) {
			s.Equal(expected, actual, "%s.%s", c.Resource, c.Operation)
		}
	}
}

// TestEveryOperationCovered checks that the case list mentions every
// operation the builder reports.
func (s *Suite) TestEveryOperationCovered() {
	ops, err := s.Builder.Operations()
	if !s.NoError(err) {
		return
	}
	covered := make(map[string]bool)
	for _, c := range Cases {
		covered[string(api.Resource(c.Resource))+"."+c.Operation] = true
	}
	for _, op := range ops {
		s.True(covered[string(op.Resource)+"."+op.Name], "%s.%s not covered", op.Resource, op.Name)
	}
	s.Len(ops, 28)
}

// TestMissingArguments checks that every operation with positional
// arguments reports a missing argument when given none.
func (s *Suite) TestMissingArguments() {
	ops, err := s.Builder.Operations()
	if !s.NoError(err) {
		return
	}
	for _, op := range ops {
		if len(op.Args) == 0 {
			continue
		}
		d, err := s.Builder.Build(string(op.Resource), op.Name, nil, nil)
		s.True(descriptor.IsMissingArgument(err), "%s.%s: %v", op.Resource, op.Name, err)
		s.Equal(descriptor.Descriptor{}, d)
	}
}

// TestShareWithoutContent checks the share operation's own required
// content rule.
func (s *Suite) TestShareWithoutContent() {
	_, err := s.Builder.Build("updates", "share", nil, map[string]interface{}{"visibility": "connections"})
	s.True(descriptor.IsMissingArgument(err), "%v", err)
}

// TestNoSuchOperation checks the unknown-operation error.
func (s *Suite) TestNoSuchOperation() {
	_, err := s.Builder.Build("groups", "explode", nil, nil)
	if s.Error(err) {
		s.False(descriptor.IsMissingArgument(err))
	}
}
