// Package pkg holds the ecbingo libraries.
//
// # Overview
//
// ecbingo keeps Emote Collector bingo boards: a 5x5 card whose cells carry
// categories and, once marked, the emote image that claimed them. The
// libraries are split by concern:
//
//  1. [board] - Board model, points, category pools and the JSON record
//  2. [render] - Cell geometry and PNG rendering of a board
//  3. [catalog] - Emote Collector API client
//  4. [cache] - File, Redis and null caches for downloaded emotes
//  5. [config] - TOML and environment configuration
//
// Supporting packages: [errors] (error codes and exit statuses), [fonts],
// [httputil], [observability] and [buildinfo].
//
// # Data flow
//
//	board.Create (categories from a pool)
//	         ↓
//	board.Encode / board.Decode (JSON record, base64 markers)
//	         ↓
//	catalog.Client.Image → board.Mark
//	         ↓
//	render.Renderer.Render → PNG
//
// # Quick Start
//
//	b, _ := board.Create(board.DefaultPool(), board.NewRand(7))
//	blob, _ := catalog.NewClient(catalog.DefaultBaseURL).Image(ctx, "Think")
//	b, _ = b.Mark(board.MustParsePoint("G3"), blob)
//	img, _ := renderer.Render(b)
//
// [board]: github.com/ecbingo/ecbingo/pkg/board
// [render]: github.com/ecbingo/ecbingo/pkg/render
// [catalog]: github.com/ecbingo/ecbingo/pkg/catalog
// [cache]: github.com/ecbingo/ecbingo/pkg/cache
// [config]: github.com/ecbingo/ecbingo/pkg/config
// [errors]: github.com/ecbingo/ecbingo/pkg/errors
// [fonts]: github.com/ecbingo/ecbingo/pkg/fonts
// [httputil]: github.com/ecbingo/ecbingo/pkg/httputil
// [observability]: github.com/ecbingo/ecbingo/pkg/observability
// [buildinfo]: github.com/ecbingo/ecbingo/pkg/buildinfo
package pkg
