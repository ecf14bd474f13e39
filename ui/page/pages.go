// Package page holds the templ components for the player-facing pages. The
// markup is static; all game data is fetched by the page scripts from the
// JSON API.
package page

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func static(html string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

// LandingPage is the public front page.
func LandingPage() templ.Component {
	return static(landingHTML)
}

// LoginPage is the register/login form.
func LoginPage() templ.Component {
	return static(loginHTML)
}

// GamePage is the main game screen, behind the session check.
func GamePage() templ.Component {
	return static(gameHTML)
}

const landingHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Life Game</title>
<link rel="stylesheet" href="/static/css/style.css">
</head>
<body>
<main class="landing">
  <h1>Life Game</h1>
  <p>Study, work, eat, rest. One day at a time.</p>
  <p>Earn qualifications to unlock better jobs, dress for the role, and keep
  your hunger and tiredness in check &mdash; burn out or go broke and the game
  starts over.</p>
  <p><a class="button" href="/login">Play</a></p>
</main>
</body>
</html>
`

const loginHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Sign in &middot; Life Game</title>
<link rel="stylesheet" href="/static/css/style.css">
</head>
<body>
<main class="login">
  <h1>Life Game</h1>
  <form id="login-form">
    <label>Username
      <input type="text" id="username" autocomplete="username" required>
    </label>
    <label>Password
      <input type="password" id="password" autocomplete="current-password" required>
    </label>
    <div class="buttons">
      <button type="submit" id="login-btn">Log in</button>
      <button type="button" id="register-btn">Register</button>
    </div>
    <p id="login-error" class="error" hidden></p>
  </form>
</main>
<script src="/static/js/login.js"></script>
</body>
</html>
`

const gameHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Life Game</title>
<link rel="stylesheet" href="/static/css/style.css">
</head>
<body>
<header class="topbar">
  <h1>Life Game</h1>
  <div class="session">
    <span id="who"></span>
    <button id="logout-btn">Log out</button>
  </div>
</header>
<main class="game">
  <section class="stats" id="stats">
    <div class="stat"><span class="label">Day</span><span id="stat-turn"></span></div>
    <div class="stat"><span class="label">Time</span><span id="stat-time"></span></div>
    <div class="stat"><span class="label">Money</span><span id="stat-money"></span></div>
    <div class="stat"><span class="label">Happiness</span><span id="stat-happiness"></span></div>
    <div class="stat"><span class="label">Tiredness</span><span id="stat-tiredness"></span></div>
    <div class="stat"><span class="label">Hunger</span><span id="stat-hunger"></span></div>
    <div class="stat"><span class="label">Look</span><span id="stat-look"></span></div>
    <div class="stat"><span class="label">Job</span><span id="stat-job"></span></div>
    <div class="stat"><span class="label">Qualification</span><span id="stat-qualification"></span></div>
    <div class="stat"><span class="label">Home</span><span id="stat-flat"></span></div>
  </section>

  <section class="locations">
    <h2>Go somewhere</h2>
    <div class="location-buttons" id="location-buttons"></div>
    <button id="pass-time-btn" class="secondary">Pass time until tomorrow</button>
  </section>

  <section class="catalogues">
    <h2 id="catalogue-title">Catalogue</h2>
    <div id="catalogue"></div>
  </section>

  <section class="log">
    <h2>What happened</h2>
    <ul id="log"></ul>
  </section>

  <section class="chat">
    <h2 id="chat-title">Talk</h2>
    <div id="chat-messages"></div>
    <form id="chat-form">
      <input type="text" id="chat-input" placeholder="Say something..." autocomplete="off">
      <button type="submit">Send</button>
    </form>
  </section>
</main>
<script src="/static/js/game.js"></script>
</body>
</html>
`
