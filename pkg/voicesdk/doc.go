/*
Package voicesdk is a Go client for the VoiceLab gateway.

# Overview

The gateway keeps the backend session token in an HTTP-only cookie, so this
client never handles tokens directly: a cookie jar on the HTTP client carries
the session between calls.

  - Client: unauthenticated operations (health) and the transport shared by sessions
  - Session: the client session context, tracking whether the caller is signed in and as whom

A Session is constructed explicitly and passed to whatever needs it:

	client := voicesdk.NewClient("http://localhost:3000")
	session := voicesdk.NewSession(client)

	// Restore an existing session, if the jar already holds a cookie
	session.Init(ctx)

	if res := session.Login(ctx, "alice", "secret"); !res.Success {
		fmt.Println("login failed:", res.Error)
	}
	defer session.Logout(ctx)

# Session Semantics

Init, Login and Logout never return errors. Init and Login report their outcome
through IsAuthenticated and Result; Logout always ends the local session.

Resource calls return an *APIError for any non-2xx response. A 401 from any
call resets the session to signed out, mirroring the gateway clearing its
cookie.

# Audio

Generated speech arrives as a data URL. DecodeAudio turns it into bytes:

	resp, err := session.GenerateSpeech(ctx, voicesdk.GenerateRequest{Text: "Hello"})
	mimeType, audio, err := voicesdk.DecodeAudio(resp.AudioURL)
*/
package voicesdk
