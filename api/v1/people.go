// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package v1

import (
	"github.com/mantacode/lin/descriptor"
)

var (
	profilePath     = descriptor.MustTemplate("people/{+id}")
	connectionsPath = descriptor.MustTemplate("people/{+id}/connections")
)

// Profile gets a member's profile, the authenticated member's if
// opts.ID is empty.  Profiles outside the first-degree network need
// opts.AuthToken, which is sent both as a query parameter and as the
// x-li-auth-token header.
func Profile(opts ProfileOptions) (descriptor.Descriptor, error) {
	path, err := expand(profilePath, "id", orSelf(opts.ID))
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	path += fields(opts.Fields, ":("+StandardPersonFields()+")")

	d := read(descriptor.People, path, opts.Headers)
	var q descriptor.Query
	if opts.AuthToken != "" {
		q.Add("auth-token", opts.AuthToken)
		d.Headers[descriptor.AuthTokenHeader] = opts.AuthToken
	}
	q.AddNonZeroInt("start", opts.Start)
	q.AddNonZeroInt("count", opts.Count)
	d.Path += q.Suffix()
	return d, nil
}

// Connections gets a member's first-degree connections.
func Connections(opts ConnectionsOptions) (descriptor.Descriptor, error) {
	path, err := expand(connectionsPath, "id", orSelf(opts.ID))
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	path += fields(opts.Fields, ":("+StandardPersonFields()+")")

	var q descriptor.Query
	q.AddNonZeroInt("start", opts.Start)
	q.AddNonZeroInt("count", opts.Count)
	q.AddNonZero("modified-since", opts.Since)
	q.AddString("modified", opts.Modified)
	return read(descriptor.People, path+q.Suffix(), opts.Headers), nil
}

// Search searches for people.  Parameters are sent in a fixed order
// with dashed names (firstName becomes first-name), followed by the
// network facet.
func Search(opts SearchOptions) (descriptor.Descriptor, error) {
	path := "people-search" + fields(opts.Fields, ":(people:("+StandardPersonFields()+"))")

	var q descriptor.Query
	for _, p := range []struct{ key, value string }{
		{"keywords", opts.Keywords},
		{"first-name", opts.FirstName},
		{"last-name", opts.LastName},
		{"company-name", opts.CompanyName},
		{"current-company", opts.CurrentCompany},
		{"title", opts.Title},
		{"current-title", opts.CurrentTitle},
		{"school-name", opts.SchoolName},
		{"current-school", opts.CurrentSchool},
		{"country-code", opts.CountryCode},
		{"postal-code", opts.PostalCode},
	} {
		if p.value != "" {
			q.Add(p.key, descriptor.EscapeURI(p.value))
		}
	}
	q.AddNonZero("distance", int64(opts.Distance))
	q.AddNonZeroInt("start", opts.Start)
	q.AddNonZeroInt("count", opts.Count)
	if opts.Sort != "" {
		q.Add("sort", descriptor.EscapeURI(opts.Sort))
	}
	if opts.NetworkOptions != "" {
		q.Add("facet", "network,"+opts.NetworkOptions)
	}
	return read(descriptor.People, path+q.Suffix(), opts.Headers), nil
}
