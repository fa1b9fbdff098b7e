/*
File    : pixelscript/web/flash.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package web

import (
	"net/http"
	"net/url"
)

const flashCookieName = "pixelscript_flash"

// setFlash stores msg in a short-lived cookie, the stateless stand-in
// for Flask's session-backed flash() app.py relies on.
func setFlash(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		MaxAge:   30,
		HttpOnly: true,
	})
}

// popFlashes reads and clears the flash cookie, matching
// get_flashed_messages' read-once semantics.
func popFlashes(w http.ResponseWriter, r *http.Request) []string {
	c, err := r.Cookie(flashCookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookieName, Value: "", Path: "/", MaxAge: -1})
	msg, err := url.QueryUnescape(c.Value)
	if err != nil || msg == "" {
		return nil
	}
	return []string{msg}
}
