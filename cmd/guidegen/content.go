// seehuhn.de/go/pdfguide - generate static PDF guides
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"seehuhn.de/go/pdfguide/layout"
)

const (
	brandName   = "365 Tool Drop"
	productName = "Song Analyzer"
	guideTitle  = "Song Analyzer Getting Started Guide"
)

var branding = layout.Branding{
	Brand:   brandName,
	Product: productName + " - Getting Started",
}

func guideCover(version, date string) *layout.Cover {
	return &layout.Cover{
		Tag:          "365 TOOL DROP",
		Title:        []string{"Song Analyzer", "Getting Started Guide"},
		Subtitle:     "Buyer-ready setup guide for your Gumroad delivery",
		PanelHeading: "What this guide covers",
		Features: []string{
			"Local Whisper transcription setup",
			"New local mood/sentiment/themes engine",
			"First file workflow in under 10 minutes",
			"Packaging notes for Gumroad buyers",
		},
		Version: version,
		Date:    date,
		Brand:   brandName,
	}
}

// buildGuide lays out the complete guide and returns one content stream
// per page.
func buildGuide(version, date string) [][]byte {
	c := layout.New(branding)
	c.CoverPage(guideCover(version, date))

	quickStart(c)
	firstAnalysis(c)
	configuration(c)

	return c.Contents()
}

func quickStart(c *layout.Composer) {
	c.NewPage()
	c.Heading1("Quick Start At A Glance")
	c.Paragraph("This product runs as two local services: the web app and a local Whisper " +
		"transcription service. No OpenAI dependency is required for the mood and " +
		"sentiment output in this version.")
	c.Heading2("System Requirements")
	c.Bullet("macOS, Linux, or Windows with Node.js 18+ and npm.")
	c.Bullet("About 2 to 4 GB free disk for dependencies and Whisper models.")
	c.Bullet("Internet only needed once for model download; daily usage can stay local.")
	c.Heading2("Files Included In This Drop")
	c.Bullet("Main app: /Song Analyzer App")
	c.Bullet("Transcription service: /Song Analyzer App/transcription-service")
	c.Bullet("Guide PDF: /output/pdf/365-tool-drop-getting-started.pdf")

	c.Heading1("Install And Run")
	c.Heading2("Step 1: Start the transcription service")
	c.CodeBlock([]string{
		"cd /path/to/Song Analyzer App/transcription-service",
		"npm install",
		"npm start",
	})
	c.Paragraph("Keep this terminal open. On first run the Whisper model downloads " +
		"and initialization can take several minutes.")
	c.Heading2("Step 2: Start the web app")
	c.CodeBlock([]string{
		"cd /path/to/Song Analyzer App",
		"npm install",
		"npm run dev",
	})
	c.Paragraph("Open the local URL shown by Vite. By default the app points to the " +
		"local transcription service at http://localhost:3001.")
}

func firstAnalysis(c *layout.Composer) {
	c.NewPage()
	c.Heading1("First Analysis Workflow")
	c.Heading2("Upload and process your first track")
	c.Bullet("Upload an MP3 or WAV in the web UI.")
	c.Bullet("The app extracts audio features first (tempo, key, energy, valence, genre, mood).")
	c.Bullet("The transcription service returns text, segments, words, and local lyricsAnalysis.")
	c.Bullet("Final results combine audio and lyrics signals in one analysis card.")
	c.Heading2("Expected output fields")
	c.CodeBlock([]string{
		`{`,
		`  "lyricsAnalysis": {`,
		`    "mood": ["upbeat", "energetic"],`,
		`    "emotion": ["joy", "confidence"],`,
		`    "themes": ["ambition", "party"],`,
		`    "sentiment": "positive|negative|neutral|mixed",`,
		`    "sentimentScore": 0.63,`,
		`    "energyFromLyrics": 0.74,`,
		`    "valenceFromLyrics": 0.81`,
		`  }`,
		`}`,
	})
	c.Heading2("Where this comes from")
	c.Paragraph("Mood and sentiment are computed locally with a rule-based analyzer in " +
		"the transcription service. It uses lexicons, phrase boosts, negation handling, " +
		"and energy/valence heuristics.")
}

func configuration(c *layout.Composer) {
	c.NewPage()
	c.Heading1("Configuration For Power Users")
	c.Heading2("Local lyrics analysis toggles")
	c.CodeBlock([]string{
		"export ENABLE_LOCAL_LYRICS_ANALYSIS=true",
		"export LOCAL_LYRICS_MIN_CHARS=24",
		"export WHISPER_PORT=3001",
		"npm start",
	})
	c.Paragraph("Set ENABLE_LOCAL_LYRICS_ANALYSIS=false if you want transcription only. " +
		"Increase LOCAL_LYRICS_MIN_CHARS if short clips are producing noisy labels.")
	c.Heading2("Troubleshooting")
	c.Bullet("If transcription fails, confirm the service is running at http://localhost:3001/health.")
	c.Bullet("If browser cannot connect, check firewall rules and mixed-content HTTPS restrictions.")
	c.Bullet("If output quality is poor, switch to a larger Whisper model and restart the service.")
	c.Bullet("If start-up is slow on first run, wait for model download and warm-up to finish.")

	c.Heading1("Gumroad Packaging Notes")
	c.Heading2("Recommended product bundle")
	c.Bullet("Include this PDF guide in the product root.")
	c.Bullet("Include a short README with exact start commands and your support email.")
	c.Bullet("Provide a one-line value statement: local transcription plus local lyric intelligence.")
	c.Heading2("Suggested listing copy (short)")
	c.Paragraph("365 Tool Drop: Song Analyzer is a local-first music analysis toolkit that " +
		"transcribes audio and generates mood, emotion, themes, and sentiment without " +
		"requiring OpenAI.")
	c.Spacer(8)
	c.ParagraphStyle("Need support? Reply to your Gumroad receipt email with your OS, "+
		"Node version, and error logs from both terminals.", c.Small)
}
