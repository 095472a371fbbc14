package mail

import "fmt"

// WelcomeMessage is sent after registration
func WelcomeMessage(to, username string) Message {
	return Message{
		To:      to,
		Subject: "Welcome to Parlor",
		Body:    fmt.Sprintf("Hi %s,\n\nYour account is ready. Enjoy Parlor!\n", username),
	}
}

// PasswordResetMessage carries the reset link; the token expires after validFor
func PasswordResetMessage(to, resetURL, validFor string) Message {
	return Message{
		To:      to,
		Subject: "Reset your Parlor password",
		Body: fmt.Sprintf("Someone asked to reset the password for this account.\n\n"+
			"Open the link below to choose a new password. It is valid for %s.\n\n%s\n\n"+
			"If this wasn't you, you can ignore this email.\n", validFor, resetURL),
	}
}

// FollowRequestMessage tells a private account owner that someone asked to follow them
func FollowRequestMessage(to, followerUsername string) Message {
	return Message{
		To:      to,
		Subject: fmt.Sprintf("%s wants to follow you on Parlor", followerUsername),
		Body: fmt.Sprintf("%s asked to follow you. Your posts stay hidden from them until you approve.\n\n"+
			"Review pending requests in the app.\n", followerUsername),
	}
}

// FollowApprovedMessage tells a follower their request was accepted
func FollowApprovedMessage(to, followingUsername string) Message {
	return Message{
		To:      to,
		Subject: fmt.Sprintf("%s approved your follow request", followingUsername),
		Body:    fmt.Sprintf("You now see posts from %s in your feed.\n", followingUsername),
	}
}
