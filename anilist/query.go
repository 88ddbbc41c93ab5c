// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import "fmt"

// hitSubquery defines the common GraphQL selection set for lightweight media records.
var hitSubquery = `
id
idMal
siteUrl
format
episodes
chapters
averageScore
seasonYear
startDate {
	year
}
title {
	romaji
	english
	native
}
`

// searchQuery defines the GraphQL query for searching media by title.
var searchQuery = fmt.Sprintf(`
query ($query: String, $type: MediaType, $perPage: Int) {
	Page (page: 1, perPage: $perPage) {
		media (search: $query, type: $type, sort: [SEARCH_MATCH, POPULARITY_DESC]) {
			%s
		}
	}
}
`, hitSubquery)

// detailsQuery defines the GraphQL query for retrieving a specific media item by its identifier.
var detailsQuery = fmt.Sprintf(`
query ($id: Int, $type: MediaType) {
	Media (id: $id, type: $type) {
		%s
		status
		genres
		description(asHtml: false)
		tags {
			name
		}
		externalLinks {
			site
			type
			url
		}
		recommendations (sort: RATING_DESC, perPage: 10) {
			nodes {
				mediaRecommendation {
					%s
				}
			}
		}
	}
}
`, hitSubquery, hitSubquery)

// trendingQuery defines the GraphQL query for the currently trending media.
var trendingQuery = fmt.Sprintf(`
query ($type: MediaType, $perPage: Int, $formats: [MediaFormat!]) {
	Page (page: 1, perPage: $perPage) {
		media (type: $type, sort: TRENDING_DESC, format_in: $formats) {
			%s
		}
	}
}
`, hitSubquery)

// seasonQuery defines the GraphQL query for the top media of a single season.
// Season filtering only exists for ANIME on Anilist.
var seasonQuery = fmt.Sprintf(`
query ($season: MediaSeason!, $year: Int!, $perPage: Int!, $sort: [MediaSort!]!, $formats: [MediaFormat!]) {
	Page (page: 1, perPage: $perPage) {
		media (type: ANIME, season: $season, seasonYear: $year, sort: $sort, format_in: $formats) {
			%s
		}
	}
}
`, hitSubquery)

// firstIDQuery resolves a free-text query to the single best matching anime identifier.
var firstIDQuery = `
query ($query: String) {
	Page (perPage: 1) {
		media (search: $query, type: ANIME, sort: [SEARCH_MATCH, POPULARITY_DESC]) {
			id
		}
	}
}
`

// airingStatusQuery retrieves the last aired and next airing episode of an anime.
var airingStatusQuery = `
query ($id: Int) {
	Media (id: $id, type: ANIME) {
		id
		siteUrl
		title {
			romaji
			english
			native
		}
		nextAiringEpisode {
			episode
			airingAt
		}
		airingSchedule (notYetAired: false, perPage: 1, sort: TIME_DESC) {
			nodes {
				episode
				airingAt
			}
		}
	}
}
`

// airingCalendarQuery retrieves episodes airing inside a bounded time window, ordered by time.
var airingCalendarQuery = `
query ($from: Int!, $to: Int!, $perPage: Int!) {
	Page (perPage: $perPage) {
		airingSchedules (airingAt_greater: $from, airingAt_lesser: $to, sort: TIME) {
			episode
			airingAt
			media {
				id
				idMal
				siteUrl
				format
				title {
					romaji
					english
					native
				}
			}
		}
	}
}
`
