// Package envelope defines the outward response contract.
//
// Every envelope carries schemaVersion. Success and failure are distinct
// types, so a response can never carry both a payload and an error, and no
// internal error type or stack trace can appear in the output: a Failure
// holds nothing but the closed taxonomy's code, message and source.
package envelope

import (
	"github.com/anihelper/anihelper/constant"
	"github.com/anihelper/anihelper/fault"
	"github.com/anihelper/anihelper/media"
)

// Meta is embedded by every envelope.
type Meta struct {
	SchemaVersion string `json:"schemaVersion"`
}

func meta() Meta {
	return Meta{SchemaVersion: constant.SchemaVersion}
}

// Failure is the uniform error envelope.
type Failure struct {
	Meta
	Error *fault.Fault `json:"error"`
}

// Fail wraps any error into the uniform error envelope. Errors that are not
// already classified fold into the INTERNAL code.
func Fail(err error) Failure {
	return Failure{Meta: meta(), Error: fault.As(err)}
}

// Search is the search_media success envelope.
type Search struct {
	Meta
	Query   string          `json:"query"`
	Kind    media.Kind      `json:"kind"`
	Source  media.SourceTag `json:"source"`
	Results []media.Hit     `json:"results"`
}

func NewSearch(query string, kind media.Kind, used media.SourceTag, results []media.Hit) Search {
	return Search{Meta: meta(), Query: query, Kind: kind, Source: used, Results: results}
}

// Details is the media_details success envelope.
type Details struct {
	Meta
	media.Details
}

func NewDetails(details media.Details) Details {
	return Details{Meta: meta(), Details: details}
}

// Trending is the trending success envelope.
type Trending struct {
	Meta
	Kind     media.Kind  `json:"kind"`
	FormatIn []string    `json:"formatIn,omitempty"`
	Results  []media.Hit `json:"results"`
}

func NewTrending(kind media.Kind, formats []string, results []media.Hit) Trending {
	return Trending{Meta: meta(), Kind: kind, FormatIn: formats, Results: results}
}

// SeasonTop is the season_top success envelope. Season and Year stay nil for
// MANGA, where Anilist has no season filter and trending serves as a proxy.
type SeasonTop struct {
	Meta
	Kind     media.Kind  `json:"kind"`
	Season   *string     `json:"season"`
	Year     *int        `json:"year"`
	Sort     string      `json:"sort"`
	FormatIn []string    `json:"formatIn,omitempty"`
	Results  []media.Hit `json:"results"`
}

func NewSeasonTop(kind media.Kind, season *string, year *int, sort string, formats []string, results []media.Hit) SeasonTop {
	return SeasonTop{Meta: meta(), Kind: kind, Season: season, Year: year, Sort: sort, FormatIn: formats, Results: results}
}

// Resolve is the resolve_title success envelope. Status carries NOT_FOUND when
// no candidate matched; Best stays nil in that case.
type Resolve struct {
	Meta
	Title      string      `json:"title"`
	Kind       media.Kind  `json:"kind"`
	Status     string      `json:"status,omitempty"`
	Best       *media.Hit  `json:"best"`
	Candidates []media.Hit `json:"candidates"`
}

func NewResolve(title string, kind media.Kind, best *media.Hit, candidates []media.Hit) Resolve {
	out := Resolve{Meta: meta(), Title: title, Kind: kind, Best: best, Candidates: candidates}
	if best == nil {
		out.Status = string(fault.NotFound)
	}
	return out
}

// AiringStatus is the airing_status success envelope.
type AiringStatus struct {
	Meta
	ID     int                  `json:"id"`
	Titles media.Title          `json:"titles"`
	URL    *string              `json:"url"`
	Last   *media.AiringEpisode `json:"last"`
	Next   *media.AiringEpisode `json:"next"`
}

func NewAiringStatus(id int, titles media.Title, url *string, last, next *media.AiringEpisode) AiringStatus {
	return AiringStatus{Meta: meta(), ID: id, Titles: titles, URL: url, Last: last, Next: next}
}

// AiringCalendar is the airing_calendar success envelope.
type AiringCalendar struct {
	Meta
	Days    int                `json:"days"`
	Results []media.AiringItem `json:"results"`
}

func NewAiringCalendar(days int, results []media.AiringItem) AiringCalendar {
	return AiringCalendar{Meta: meta(), Days: days, Results: results}
}

// Ask is the ask success envelope: the detected intent, the arguments derived
// from the text, and the routed tool's own envelope.
type Ask struct {
	Meta
	Intent string `json:"intent"`
	Args   any    `json:"args"`
	Result any    `json:"result"`
}

func NewAsk(intent string, args, result any) Ask {
	return Ask{Meta: meta(), Intent: intent, Args: args, Result: result}
}

// Example pairs a use case with an invocation a host can replay.
type Example struct {
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

// Help is the help success envelope: the capability catalog served to hosts
// and users.
type Help struct {
	Meta
	Name     string    `json:"name"`
	Version  string    `json:"version"`
	Summary  string    `json:"summary"`
	Features []string  `json:"features"`
	Examples []Example `json:"examples"`
	Notes    []string  `json:"notes"`
}

func NewHelp(name, version, summary string, features []string, examples []Example, notes []string) Help {
	return Help{Meta: meta(), Name: name, Version: version, Summary: summary, Features: features, Examples: examples, Notes: notes}
}

// HelpText is the plain-text counterpart of Help for minimalist hosts.
type HelpText struct {
	Meta
	Text string `json:"text"`
}

func NewHelpText(text string) HelpText {
	return HelpText{Meta: meta(), Text: text}
}

// Health is the health success envelope. It is static: no upstream is probed.
type Health struct {
	Meta
	OK      bool     `json:"ok"`
	Sources []string `json:"sources"`
}

func NewHealth(sources []string) Health {
	return Health{Meta: meta(), OK: true, Sources: sources}
}

// Endpoints lists the configured upstream URLs.
type Endpoints struct {
	Anilist string `json:"anilist"`
	Jikan   string `json:"jikan"`
}

// Limits reports the process-wide limits enforced by the dispatcher and adapters.
type Limits struct {
	MaxPerPage int `json:"maxPerPage"`
	TimeoutSec int `json:"timeoutSec"`
}

// About is the about success envelope.
type About struct {
	Meta
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	Endpoints Endpoints `json:"endpoints"`
	Limits    Limits    `json:"limits"`
}

func NewAbout(name, version string, endpoints Endpoints, limits Limits) About {
	return About{Meta: meta(), Name: name, Version: version, Endpoints: endpoints, Limits: limits}
}
