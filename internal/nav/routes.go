// Package nav holds the typed route table the mobile client navigates with.
// The API transmits post and prompt ids as strings, but the replies screen
// takes numeric params, so building that route can fail.
package nav

import (
	"fmt"
	"strconv"
)

type Screen string

const (
	Index         Screen = "index"
	Register      Screen = "Register"
	Trending      Screen = "Trending"
	ProfileScreen Screen = "ProfileScreen"
	Navbar        Screen = "Navbar"
	Replies       Screen = "Replies"
)

// RepliesParams are the numeric params the replies screen requires.
type RepliesParams struct {
	PostID   int64 `json:"postId"`
	PromptID int64 `json:"promptId"`
}

// Route is a dispatchable navigation target. Params is nil for the
// parameterless screens.
type Route struct {
	Screen Screen         `json:"screen"`
	Params *RepliesParams `json:"params,omitempty"`
}

// RepliesRoute converts the string ids into a typed Replies route. If either
// id is not numeric the navigation is aborted with an error; no partial
// route is ever produced.
func RepliesRoute(postID, promptID string) (Route, error) {
	pid, err := strconv.ParseInt(postID, 10, 64)
	if err != nil {
		return Route{}, fmt.Errorf("invalid post id %q: %w", postID, err)
	}
	prid, err := strconv.ParseInt(promptID, 10, 64)
	if err != nil {
		return Route{}, fmt.Errorf("invalid prompt id %q: %w", promptID, err)
	}
	return Route{Screen: Replies, Params: &RepliesParams{PostID: pid, PromptID: prid}}, nil
}
