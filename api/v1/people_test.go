// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package v1

import (
	"testing"

	"github.com/mantacode/lin/descriptor"
	"github.com/stretchr/testify/assert"
)

const std = "id,first-name,last-name,formatted-name,headline,picture-url,auth-token,distance"

func TestProfileDefaults(t *testing.T) {
	d, err := Profile(ProfileOptions{})
	if assert.NoError(t, err) {
		assert.Equal(t, descriptor.GET, d.Method)
		assert.Equal(t, "people/~:("+std+")", d.Path)
		assert.Equal(t, map[string]string{"x-li-format": "json"}, d.Headers)
		assert.Equal(t, descriptor.People, d.Resource)
		assert.False(t, d.HasBody())
	}
}

func TestProfileAuthToken(t *testing.T) {
	d, err := Profile(ProfileOptions{
		ID:        "15003820",
		AuthToken: "NAME:Yc02",
		Start:     Int(0),
		Count:     Int(10),
	})
	if assert.NoError(t, err) {
		assert.Equal(t, "people/15003820:("+std+")?auth-token=NAME:Yc02&count=10", d.Path)
		assert.Equal(t, map[string]string{
			"x-li-format":     "json",
			"x-li-auth-token": "NAME:Yc02",
		}, d.Headers)
	}
}

func TestProfileHeaderOverride(t *testing.T) {
	headers := map[string]string{"x-li-format": "xml"}
	d, err := Profile(ProfileOptions{
		FieldOptions: FieldOptions{Fields: ":(id)", Headers: headers},
		AuthToken:    "tok",
	})
	if assert.NoError(t, err) {
		assert.Equal(t, "people/~:(id)?auth-token=tok", d.Path)
		assert.Equal(t, map[string]string{
			"x-li-format":     "xml",
			"x-li-auth-token": "tok",
		}, d.Headers)
		// The caller's map is not modified
		assert.Len(t, headers, 1)
	}
}

func TestConnections(t *testing.T) {
	d, err := Connections(ConnectionsOptions{
		Start:    Int(5),
		Count:    Int(10),
		Since:    1302819203000,
		Modified: "new",
	})
	if assert.NoError(t, err) {
		assert.Equal(t, "people/~/connections:("+std+")?start=5&count=10&modified-since=1302819203000&modified=new", d.Path)
	}

	d, err = Connections(ConnectionsOptions{ID: "abc", FieldOptions: FieldOptions{Fields: ":(id)"}})
	if assert.NoError(t, err) {
		assert.Equal(t, "people/abc/connections:(id)", d.Path)
	}
}

func TestSearch(t *testing.T) {
	d, err := Search(SearchOptions{})
	if assert.NoError(t, err) {
		assert.Equal(t, "people-search:(people:("+std+"))", d.Path)
	}

	d, err = Search(SearchOptions{
		Keywords:       "Alex Zoff",
		FirstName:      "Alex",
		CurrentCompany: "true",
		Distance:       25,
		Count:          Int(25),
		Sort:           "distance",
		NetworkOptions: "F,S",
	})
	if assert.NoError(t, err) {
		assert.Equal(t,
			"people-search:(people:("+std+"))?keywords=Alex%20Zoff&first-name=Alex&current-company=true&distance=25&count=25&sort=distance&facet=network,F,S",
			d.Path)
	}
}

func TestSearchOrder(t *testing.T) {
	d, err := Search(SearchOptions{
		FieldOptions:   FieldOptions{Fields: ":(people:(id))"},
		Sort:           "relevance",
		Start:          Int(10),
		PostalCode:     "94043",
		CountryCode:    "us",
		CurrentSchool:  "false",
		SchoolName:     "MIT",
		CurrentTitle:   "true",
		Title:          "CTO",
		CompanyName:    "Acme",
		LastName:       "Zoff",
		Keywords:       "go",
		NetworkOptions: "A",
	})
	if assert.NoError(t, err) {
		assert.Equal(t,
			"people-search:(people:(id))?keywords=go&last-name=Zoff&company-name=Acme&title=CTO&current-title=true&school-name=MIT&current-school=false&country-code=us&postal-code=94043&start=10&sort=relevance&facet=network,A",
			d.Path)
	}
}
