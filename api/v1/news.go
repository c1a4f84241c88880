// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package v1

import (
	"strconv"

	"github.com/mantacode/lin/descriptor"
)

// Well-known topic keys.
const (
	TopNewsTopic    = "id=TOP_NEWS_TODAY"
	SharedNewsTopic = "id=FIRST_DEGREE_NEWS_TODAY"
)

var (
	// Keyed topics keep their "id=" prefix; free-form topic ids
	// are escaped.
	topicKeyPath = descriptor.MustTemplate("people/~/topics/{+topic}")
	topicIDPath  = descriptor.MustTemplate("people/~/topics/{topic}")
	articlePath  = descriptor.MustTemplate("people/~/articles/{+id}")
)

const followedTopicsPath = "people/~/topics:(id,title,description,because-of)?type=FOLW"

func topic(t *descriptor.Template, topicID string, opts TopicOptions) (descriptor.Descriptor, error) {
	path, err := expand(t, "topic", topicID)
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	path += fields(opts.Fields, DefaultTopicFields())

	var q descriptor.Query
	q.AddNonZeroInt("count", opts.Count)
	q.AddNonZeroInt("start", opts.Start)
	q.Add("max-shared-by-people-degree", orDefault(opts.MaxSharedByPeopleDegree, 1))
	q.Add("max-shared-by-people", orDefault(opts.MaxSharedByPeopleCount, 1))
	q.Add("max-articles", orDefault(opts.MaxArticles, 0))
	q.Add("max-stories", orDefault(opts.MaxStories, 100))
	return read(descriptor.News, path+q.Suffix(), opts.Headers), nil
}

func orDefault(n, dflt int) string {
	if n == 0 {
		n = dflt
	}
	return strconv.Itoa(n)
}

// TopNews gets the top news topic.
func TopNews(opts TopicOptions) (descriptor.Descriptor, error) {
	return topic(topicKeyPath, TopNewsTopic, opts)
}

// SharedNews gets the news shared by first-degree connections.
func SharedNews(opts TopicOptions) (descriptor.Descriptor, error) {
	return topic(topicKeyPath, SharedNewsTopic, opts)
}

// TopicNews gets the articles of a topic by its opaque id.
func TopicNews(topicID string, opts TopicOptions) (descriptor.Descriptor, error) {
	if topicID == "" {
		return descriptor.Descriptor{}, descriptor.Missing("topicNews", "topicId")
	}
	return topic(topicIDPath, topicID, opts)
}

// FollowedTopics lists the topics the member follows.  The field
// expression is fixed; opts.Fields is ignored.
func FollowedTopics(opts PageOptions) (descriptor.Descriptor, error) {
	path := followedTopicsPath
	if opts.Start != nil && *opts.Start != 0 {
		path += "&start=" + strconv.Itoa(*opts.Start)
	}
	if opts.Count != nil && *opts.Count != 0 {
		path += "&count=" + strconv.Itoa(*opts.Count)
	}
	return read(descriptor.News, path, opts.Headers), nil
}

// Article gets a news article.
func Article(articleID string, opts FieldOptions) (descriptor.Descriptor, error) {
	if articleID == "" {
		return descriptor.Descriptor{}, descriptor.Missing("article", "id")
	}
	path, err := expand(articlePath, "id", articleID)
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	return read(descriptor.News, path+fields(opts.Fields, DefaultArticleFields()), opts.Headers), nil
}

// Shares gets the recent shares of a news article.
func Shares(articleID string, opts SharesOptions) (descriptor.Descriptor, error) {
	if articleID == "" {
		return descriptor.Descriptor{}, descriptor.Missing("shares", "id")
	}
	var q descriptor.Query
	q.Add("facet", "articleID,"+articleID)
	q.AddNonZeroInt("count", opts.Count)
	q.AddNonZero("after", opts.After)
	return read(descriptor.News, "signal-search"+q.Suffix(), opts.Headers), nil
}
