// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package v1

// StandardPersonFields is the person field list most endpoints embed
// when they return people.
func StandardPersonFields() string {
	return "id,first-name,last-name,formatted-name,headline,picture-url,auth-token,distance"
}

// BasicPersonFields is StandardPersonFields without formatted-name;
// group endpoints use it for post creators and likers.
func BasicPersonFields() string {
	return "id,first-name,last-name,headline,picture-url,auth-token,distance"
}

const standardUpdateFields = "timestamp,update-key,update-type,update-content:(person:(id,first-name,last-name,formatted-name,headline,picture-url,auth-token,distance,connections,current-share,main-address,twitter-accounts,im-accounts,phone-numbers,date-of-birth,member-groups)),updated-fields,is-commentable,update-comments,is-likable,is-liked,num-likes"

// DefaultTopicFields is the field expression for news topics.
func DefaultTopicFields() string {
	return ":(id,title,description,because-of,topic-stories:(topic-articles:(is-read,relevance-data:(global-share-count,in-topic-share-count),article-content,shared-in-network-count,trending-in-entities:(industries:(id,relation-to-viewer)),shared-by-people:(" + StandardPersonFields() + "))))"
}

// DefaultArticleFields is the field expression for a single article.
func DefaultArticleFields() string {
	return ":(is-read,when-saved,relevance-data,article-content,shared-in-network-count,trending-in-entities:(industries:(id,relation-to-viewer)),shared-by-people:(" + StandardPersonFields() + "))"
}

// Default field expressions for the group endpoints.
var (
	listFields = ":(group:(id,name,num-members,counts-by-category,small-logo-url,posts:(id,title,relation-to-viewer:(is-liked),creator:(" +
		BasicPersonFields() + "),creation-timestamp,likes,comments)))"

	recommendedFields = ":(id,name,counts-by-category,is-open-to-non-members,large-logo-url,num-members)"

	showFields = ":(id,name,num-members,large-logo-url,is-open-to-non-members,relation-to-viewer:(membership-state))"

	postsFields = ":(id,title,site-group-post-url,attachment,attachments,relation-to-viewer:(is-liked),summary,creator:(" +
		BasicPersonFields() + "),creation-timestamp,likes:(person:(" + BasicPersonFields() +
		"),timestamp),comments:(id,creator:(" + BasicPersonFields() + "),creation-timestamp,text))"

	showPostFields = ":(id,title,site-group-post-url,attachment,relation-to-viewer:(is-liked),summary,creator:(" +
		BasicPersonFields() + "),creation-timestamp,likes:(person:(" + BasicPersonFields() +
		"),timestamp),comments:(id,creator:(" + BasicPersonFields() + "),creation-timestamp,text))"

	postCommentsFields = ":(id,creator:(" + StandardPersonFields() + "),creation-timestamp,text)"

	postLikesFields = ":(person:(" + StandardPersonFields() + "),timestamp)"
)

// fields returns override if it is set, and dflt otherwise.  The
// expression is never inspected.
func fields(override, dflt string) string {
	if override != "" {
		return override
	}
	return dflt
}
