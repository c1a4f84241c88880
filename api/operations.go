// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package api

import (
	"github.com/mantacode/lin/api/v1"
	"github.com/mantacode/lin/descriptor"
)

type result = descriptor.Descriptor

func info(resource descriptor.Resource, name string, method descriptor.Method, args []string, proto interface{}) OperationInfo {
	if args == nil {
		args = []string{}
	}
	return OperationInfo{
		Resource: resource,
		Name:     name,
		Method:   method,
		Args:     args,
		Options:  optionNames(proto),
	}
}

func v1Operations() []operation {
	return []operation{
		// people
		{
			info(descriptor.People, "profile", descriptor.GET, nil, v1.ProfileOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.ProfileOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.Profile(opts)
			},
		},
		{
			info(descriptor.People, "connections", descriptor.GET, nil, v1.ConnectionsOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.ConnectionsOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.Connections(opts)
			},
		},
		{
			info(descriptor.People, "search", descriptor.GET, nil, v1.SearchOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.SearchOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.Search(opts)
			},
		},

		// groups
		{
			info(descriptor.Groups, "list", descriptor.GET, nil, v1.ListOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.ListOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.List(opts)
			},
		},
		{
			info(descriptor.Groups, "recommended", descriptor.GET, nil, v1.PageOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.PageOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.Recommended(opts)
			},
		},
		{
			info(descriptor.Groups, "show", descriptor.GET, []string{"groupId"}, v1.FieldOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.FieldOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.Show(arg(args, 0), opts)
			},
		},
		{
			info(descriptor.Groups, "posts", descriptor.GET, []string{"groupId"}, v1.PostsOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.PostsOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.Posts(arg(args, 0), opts)
			},
		},
		{
			info(descriptor.Groups, "showPost", descriptor.GET, []string{"postId"}, v1.FieldOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.FieldOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.ShowPost(arg(args, 0), opts)
			},
		},
		{
			info(descriptor.Groups, "postComments", descriptor.GET, []string{"postId"}, v1.PageOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.PageOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.PostComments(arg(args, 0), opts)
			},
		},
		{
			info(descriptor.Groups, "postLikes", descriptor.GET, []string{"postId"}, v1.PageOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.PageOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.PostLikes(arg(args, 0), opts)
			},
		},
		{
			info(descriptor.Groups, "joinGroup", descriptor.PUT, []string{"groupId"}, nil),
			func(args []string, options map[string]interface{}) (result, error) {
				return v1.JoinGroup(arg(args, 0))
			},
		},
		{
			info(descriptor.Groups, "leaveGroup", descriptor.DELETE, []string{"groupId"}, nil),
			func(args []string, options map[string]interface{}) (result, error) {
				return v1.LeaveGroup(arg(args, 0))
			},
		},
		{
			info(descriptor.Groups, "createGroup", descriptor.POST, nil, v1.CreateGroupBody{}),
			func(args []string, options map[string]interface{}) (result, error) {
				// Accept both {"body": {...}} and the bare fields
				if body, isMap := options["body"].(map[string]interface{}); isMap {
					options = body
				}
				var body v1.CreateGroupBody
				if err := decode(options, &body); err != nil {
					return result{}, err
				}
				return v1.CreateGroup(body)
			},
		},
		{
			info(descriptor.Groups, "postToGroup", descriptor.POST, []string{"groupId", "title", "summary"}, nil),
			func(args []string, options map[string]interface{}) (result, error) {
				return v1.PostToGroup(arg(args, 0), arg(args, 1), arg(args, 2))
			},
		},
		{
			info(descriptor.Groups, "likePost", descriptor.PUT, []string{"postId", "doLike"}, nil),
			func(args []string, options map[string]interface{}) (result, error) {
				return v1.LikePost(arg(args, 0), optionalArg(args, 1))
			},
		},
		{
			info(descriptor.Groups, "commentOnPost", descriptor.POST, []string{"postId", "comment"}, nil),
			func(args []string, options map[string]interface{}) (result, error) {
				return v1.CommentOnPost(arg(args, 0), arg(args, 1))
			},
		},

		// updates
		{
			info(descriptor.Updates, "updates", descriptor.GET, []string{"types"}, v1.UpdatesOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.UpdatesOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.Updates(arg(args, 0), opts)
			},
		},
		{
			info(descriptor.Updates, "likes", descriptor.GET, []string{"id"}, v1.PageOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.PageOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.Likes(arg(args, 0), opts)
			},
		},
		{
			info(descriptor.Updates, "comments", descriptor.GET, []string{"id"}, v1.PageOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.PageOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.Comments(arg(args, 0), opts)
			},
		},
		{
			info(descriptor.Updates, "like", descriptor.PUT, []string{"id", "doLike"}, nil),
			func(args []string, options map[string]interface{}) (result, error) {
				return v1.Like(arg(args, 0), optionalArg(args, 1))
			},
		},
		{
			info(descriptor.Updates, "comment", descriptor.POST, []string{"id", "comment"}, nil),
			func(args []string, options map[string]interface{}) (result, error) {
				return v1.Comment(arg(args, 0), arg(args, 1))
			},
		},
		{
			info(descriptor.Updates, "share", descriptor.POST, nil, v1.ShareOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.ShareOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.Share(opts)
			},
		},

		// news
		{
			info(descriptor.News, "topNews", descriptor.GET, nil, v1.TopicOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.TopicOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.TopNews(opts)
			},
		},
		{
			info(descriptor.News, "sharedNews", descriptor.GET, nil, v1.TopicOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.TopicOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.SharedNews(opts)
			},
		},
		{
			info(descriptor.News, "topicNews", descriptor.GET, []string{"topicId"}, v1.TopicOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.TopicOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.TopicNews(arg(args, 0), opts)
			},
		},
		{
			info(descriptor.News, "followedTopics", descriptor.GET, nil, v1.PageOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.PageOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.FollowedTopics(opts)
			},
		},
		{
			info(descriptor.News, "article", descriptor.GET, []string{"id"}, v1.FieldOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.FieldOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.Article(arg(args, 0), opts)
			},
		},
		{
			info(descriptor.News, "shares", descriptor.GET, []string{"id"}, v1.SharesOptions{}),
			func(args []string, options map[string]interface{}) (result, error) {
				var opts v1.SharesOptions
				if err := decode(options, &opts); err != nil {
					return result{}, err
				}
				return v1.Shares(arg(args, 0), opts)
			},
		},
	}
}
