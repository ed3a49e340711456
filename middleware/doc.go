// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Request Logging

WithLogging wraps a handler with slog request/completion logging and counts
the request in the prometheus request counter:

	mux.HandleFunc("GET /picks", middleware.WithLogging(handler.GetPicks))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "side is required")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse writes the models.ErrorResponse shape with the status text as
the error and an optional detail message.

# CORS

CORS wraps the whole mux so the browser frontend can call the API from a
different origin. Preflight OPTIONS requests are answered directly.
*/
package middleware
