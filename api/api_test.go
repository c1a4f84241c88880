// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package api_test

import (
	"testing"

	"github.com/mantacode/lin/api"
	"github.com/mantacode/lin/api/apitest"
	"github.com/mantacode/lin/api/v1"
	"github.com/mantacode/lin/descriptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic builder tests against the local registry.
type Suite struct {
	apitest.Suite
}

func (s *Suite) SetupSuite() {
	s.Builder = api.New()
}

func TestRegistry(t *testing.T) {
	suite.Run(t, &Suite{})
}

func TestTypedOptions(t *testing.T) {
	r := api.New()
	d, err := r.Build("groups", "list", nil, map[string]interface{}{
		"membership": []string{"owner", "manager"},
		"count":      25,
	})
	if assert.NoError(t, err) {
		expected, _ := v1.List(v1.ListOptions{
			Membership: []string{"owner", "manager"},
			Count:      v1.Int(25),
		})
		assert.Equal(t, expected, d)
	}
}

func TestCreateGroupWrapped(t *testing.T) {
	r := api.New()
	d, err := r.Build("groupsAPI", "createGroup", nil, map[string]interface{}{
		"body": map[string]interface{}{
			"name":       "myGroup",
			"visibility": "hidden",
			"bogus":      "ignored",
		},
	})
	if assert.NoError(t, err) {
		expected, _ := v1.CreateGroup(v1.CreateGroupBody{Name: "myGroup", Visibility: "hidden"})
		assert.Equal(t, expected, d)
		assert.NotContains(t, d.Body, "bogus")
	}
}

func TestHeadersOption(t *testing.T) {
	r := api.New()
	d, err := r.Build("people", "profile", nil, map[string]interface{}{
		"headers": map[string]string{"x-li-format": "xml"},
	})
	if assert.NoError(t, err) {
		assert.Equal(t, map[string]string{"x-li-format": "xml"}, d.Headers)
	}
}

func TestBadOptions(t *testing.T) {
	r := api.New()
	_, err := r.Build("groups", "list", nil, map[string]interface{}{
		"count": "many",
	})
	if assert.Error(t, err) {
		bad, isBad := err.(api.ErrBadOptions)
		if assert.True(t, isBad, "%+v", err) {
			assert.Equal(t, "list", bad.Operation)
			assert.Equal(t, 400, bad.HTTPStatus())
		}
	}
}

func TestNoSuchOperation(t *testing.T) {
	r := api.New()
	_, err := r.Build("jobs", "list", nil, nil)
	assert.Equal(t, api.ErrNoSuchOperation{Resource: "jobs", Operation: "list"}, err)

	_, err = r.Lookup("groups", "nope")
	if assert.Error(t, err) {
		assert.Equal(t, 404, err.(api.ErrNoSuchOperation).HTTPStatus())
	}
}

func TestLookup(t *testing.T) {
	r := api.New()
	info, err := r.Lookup("updatesAPI", "like")
	if assert.NoError(t, err) {
		assert.Equal(t, descriptor.Updates, info.Resource)
		assert.Equal(t, descriptor.PUT, info.Method)
		assert.Equal(t, []string{"id", "doLike"}, info.Args)
		assert.Equal(t, []string{}, info.Options)
	}

	info, err = r.Lookup("news", "topicNews")
	if assert.NoError(t, err) {
		assert.Equal(t, []string{
			"fields", "headers", "start", "count",
			"maxSharedByPeopleDegree", "maxSharedByPeopleCount",
			"maxArticles", "maxStories",
		}, info.Options)
	}
}

func TestOperationsSorted(t *testing.T) {
	r := api.New()
	ops, err := r.Operations()
	if assert.NoError(t, err) {
		assert.Len(t, ops, 28)
		for i := 1; i < len(ops); i++ {
			prev, cur := ops[i-1], ops[i]
			assert.True(t, prev.Resource < cur.Resource ||
				(prev.Resource == cur.Resource && prev.Name < cur.Name),
				"%s.%s before %s.%s", prev.Resource, prev.Name, cur.Resource, cur.Name)
		}
		// Callers get their own copy
		ops[0].Name = "mangled"
		again, _ := r.Operations()
		assert.NotEqual(t, "mangled", again[0].Name)
	}
}

func TestResource(t *testing.T) {
	assert.Equal(t, descriptor.Groups, api.Resource("groupsAPI"))
	assert.Equal(t, descriptor.News, api.Resource("news"))
}
