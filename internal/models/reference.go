// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

package models

// EventCategoryInfo is one category reference row from /Calendar/Categories.
type EventCategoryInfo struct {
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
	SortOrder    int    `json:"sortOrder"`
}

// ESRBRatingInfo is one rating reference row from /Calendar/Ratings.
//
// Any event whose rating requires age validation is excluded from every
// display list unconditionally, regardless of filter configuration.
type ESRBRatingInfo struct {
	RatingName            string `json:"ratingName"`
	Description           string `json:"description"`
	SortOrder             int    `json:"sortOrder"`
	Prefix                string `json:"prefix"`
	RequiresAgeValidation bool   `json:"requiresAgeValidation"`
}
