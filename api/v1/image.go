// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package v1

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var imageProxy = regexp.MustCompile(`media\.linkedin\.com.+?url=(.+)`)

// UnwrapImageURL recovers the original image URL from a
// media.linkedin.com proxy URL, which carries it percent-encoded in
// its url= parameter.  Other URLs are returned unchanged.  '+' is not
// decoded as a space.
func UnwrapImageURL(imageURL string) string {
	match := imageProxy.FindStringSubmatch(imageURL)
	if match == nil {
		return imageURL
	}
	unescaped, err := url.PathUnescape(match[1])
	if err != nil {
		return unescapeValid(match[1])
	}
	return unescaped
}

// unescapeValid decodes every well-formed %XX triplet in s and keeps
// malformed ones as they are.
func unescapeValid(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			if n, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
				b.WriteByte(byte(n))
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
