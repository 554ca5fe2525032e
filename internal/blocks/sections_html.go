// SPDX-License-Identifier: MIT
package blocks

// One template per section kind. Controls are plain links that carry the
// next view state in the query string.
const sectionsHTML = `
{{define "navbar"}}<header class="navbar" id="navbar">
  <nav aria-label="{{.Labels.Brand}}">
    <a class="brand" href="{{.HomeHref}}" aria-label="{{.Labels.AriaLabels.GoToHomepage}}">{{.Labels.Brand}}</a>
    <ul class="nav-links{{if .MenuOpen}} open{{end}}">
      {{- range .Links}}
      <li><a href="{{if $.Anchors}}#{{.ID}}{{else}}{{$.LandingHref}}#{{.ID}}{{end}}">{{.Label}}</a></li>
      {{- end}}
    </ul>
    <a class="locale-toggle" href="{{.SwitchHref}}" hreflang="{{.SwitchTo}}" aria-label="{{.SwitchLabel}}">{{.SwitchTo}}</a>
    <a class="btn" href="#final-cta">{{.Labels.CTA}}</a>
    <a class="menu-toggle" href="{{.MenuHref}}" aria-expanded="{{.MenuOpen}}" aria-label="{{.MenuAriaLabel}}">&#9776;</a>
  </nav>
</header>{{end}}

{{define "hero-body"}}
    {{if .Eyebrow}}<p class="eyebrow">{{.Eyebrow}}</p>{{end}}
    <h1>{{.Title}}</h1>
    <p class="subtitle">{{.Subtitle}}</p>
    <div class="actions">
      <a class="btn" href="#final-cta">{{.PrimaryCTA}}</a>
      {{if .SecondaryCTA}}<a class="btn secondary" href="#pricing">{{.SecondaryCTA}}</a>{{end}}
    </div>
{{end}}

{{define "hero"}}<section id="hero" class="hero">
  <div class="container">{{template "hero-body" .}}</div>
</section>{{end}}

{{define "hero-agency"}}<section id="hero" class="hero hero-agency">
  <div class="container split">
    <div>{{template "hero-body" .}}</div>
    <div class="media" aria-hidden="true"></div>
  </div>
</section>{{end}}

{{define "social-proof"}}<section id="social-proof" class="social-proof">
  {{if .Label}}<p class="label">{{.Label}}</p>{{end}}
  {{if .Logos}}<ul class="logos">{{range .Logos}}<li>{{.}}</li>{{end}}</ul>{{end}}
</section>{{end}}

{{define "items"}}
  <div class="grid grid-cols-3">
    {{- range .}}
    <article class="card">
      {{if .IconKey}}<span class="icon icon-{{.IconKey}}" aria-hidden="true"></span>{{end}}
      {{if .Eyebrow}}<p class="eyebrow">{{.Eyebrow}}</p>{{end}}
      <h3>{{.Title}}</h3>
      <p>{{.Body}}</p>
    </article>
    {{- end}}
  </div>
{{end}}

{{define "header"}}
  {{if .Eyebrow}}<p class="eyebrow">{{.Eyebrow}}</p>{{end}}
  <h2>{{.Heading}}</h2>
  {{if .Subtitle}}<p class="subtitle">{{.Subtitle}}</p>{{end}}
{{end}}

{{define "value-props"}}<section id="value-props">
  {{template "header" .}}
  {{template "items" .Items}}
</section>{{end}}

{{define "features"}}<section id="features">
  {{template "header" .}}
  {{template "items" .Items}}
</section>{{end}}

{{define "deep-dive"}}<section id="deep-dive">
  {{template "header" .}}
  {{if .Steps}}<ol class="steps">
    {{- range .Steps}}
    <li><span class="step-number">{{.Number}}</span><h3>{{.Title}}</h3><p>{{.Body}}</p></li>
    {{- end}}
  </ol>{{end}}
</section>{{end}}

{{define "metrics"}}<section id="metrics">
  <h2>{{.Heading}}</h2>
  {{if .Subtitle}}<p class="subtitle">{{.Subtitle}}</p>{{end}}
  <div class="grid grid-cols-{{.Columns}}">
    {{- range .Metrics}}
    <div class="metric"><strong>{{.Value}}</strong><span>{{.Label}}</span><p>{{.Description}}</p></div>
    {{- end}}
  </div>
</section>{{end}}

{{define "use-cases"}}<section id="use-cases">
  {{template "header" .List}}
  <div class="carousel-controls">
    <a class="carousel-control prev" href="{{.PrevHref}}"{{if .PrevDisabled}} aria-disabled="true"{{end}}>&larr;</a>
    <a class="carousel-control next" href="{{.NextHref}}"{{if .NextDisabled}} aria-disabled="true"{{end}}>&rarr;</a>
  </div>
  <div class="carousel">
    {{- range .Cards}}
    <article class="card"{{if not .Visible}} hidden{{end}}>
      {{if .IconKey}}<span class="icon icon-{{.IconKey}}" aria-hidden="true"></span>{{end}}
      <h3>{{.Title}}</h3>
      <p>{{.Body}}</p>
    </article>
    {{- end}}
  </div>
</section>{{end}}

{{define "testimonials"}}<section id="testimonials">
  <h2>{{.Heading}}</h2>
  {{with .GoogleReviews}}<a class="reviews" href="{{if .URL}}{{.URL}}{{else}}#{{end}}" target="_blank" rel="noopener noreferrer" aria-label="{{if .AriaLabel}}{{.AriaLabel}}{{else}}Google Reviews{{end}}">{{if .Text}}<span>{{.Text}}</span>{{end}}{{if .Stars}}<span class="stars">{{.Stars}}</span>{{end}}</a>{{end}}
  {{if .Subtitle}}<p class="subtitle">{{.Subtitle}}</p>{{end}}
  <div class="carousel-controls">
    <a class="carousel-control prev" href="{{.PrevHref}}" aria-label="{{.PreviousLabel}}"{{if .PrevDisabled}} aria-disabled="true"{{end}}>&larr;</a>
    <a class="carousel-control next" href="{{.NextHref}}" aria-label="{{.NextLabel}}"{{if .NextDisabled}} aria-disabled="true"{{end}}>&rarr;</a>
  </div>
  {{with .Active}}
  <article class="testimonial card" data-index="{{$.Index}}">
    <div class="outcomes">
      {{- range .Outcomes}}
      <div><strong>{{.Value}}</strong>{{if .Label}}<span>{{.Label}}</span>{{end}}</div>
      {{- end}}
      {{if .Modules}}<p class="label">{{$.UsedModulesLabel}}</p><ul class="modules">{{range .Modules}}<li>{{.}}</li>{{end}}</ul>{{end}}
    </div>
    <h3>{{.Company}}</h3>
    {{if .Person}}<p class="person">{{.Person}}</p>{{end}}
    {{if .Outcome}}<p class="outcome">{{.Outcome}}</p>{{end}}
    <p>{{.Description}}</p>
  </article>
  {{end}}
</section>{{end}}

{{define "pricing"}}<section id="pricing">
  <h2>{{.Heading}}</h2>
  <p class="subtitle">{{.Subtitle}}</p>
  {{if .Helper}}<p class="helper">{{.Helper}}</p>{{end}}
  {{with .Toggle}}<div class="billing-toggle" role="group" aria-label="{{.Label}}">
    <a href="{{$.MonthlyHref}}" aria-pressed="{{not $.Yearly}}">{{.Monthly}}</a>
    <a href="{{$.YearlyHref}}" aria-pressed="{{$.Yearly}}">{{.Yearly}}{{if .YearlyBadge}} <span class="badge">{{.YearlyBadge}}</span>{{end}}</a>
  </div>{{end}}
  <div class="grid grid-cols-{{.Columns}}">
    {{- range .Cards}}
    <article class="card pricing-card{{if .IsPopular}} popular{{end}}" data-plan="{{.ID}}">
      <h3>{{.Title}}</h3>
      <p>{{.Body}}</p>
      <p class="price">{{.Active.Price}}</p>
      {{if .Active.SubPrice}}<p class="sub-price">{{.Active.SubPrice}}</p>{{end}}
      <p class="price-detail">{{.Active.Detail}}</p>
      <ul>{{range .Features}}<li>{{.}}</li>{{end}}</ul>
      {{if .Active.SingleUser}}<p class="single-user">{{if $.SingleUserLabel}}<span>{{$.SingleUserLabel}}</span> {{end}}{{.Active.SingleUser}}{{if $.ActiveSingleUserLabel}} <span>{{$.ActiveSingleUserLabel}}</span>{{end}}</p>{{end}}
      <a class="btn" href="#final-cta">{{.CTALabel}}</a>
    </article>
    {{- end}}
  </div>
  {{if .FooterNote}}<p class="footer-note">{{.FooterNote}}</p>{{end}}
</section>{{end}}

{{define "faq"}}<section id="faq">
  <h2>{{.Heading}}</h2>
  {{if .Subtitle}}<p class="subtitle">{{.Subtitle}}</p>{{end}}
  {{- range .Entries}}
  <details{{if .Open}} open{{end}}>
    <summary><a href="{{.ToggleHref}}">{{.Question}}</a></summary>
    <p>{{.Answer}}</p>
  </details>
  {{- end}}
</section>{{end}}

{{define "final-cta"}}<section id="final-cta" class="final-cta">
  <h2>{{.Heading}}</h2>
  {{if .Subtitle}}<p class="subtitle">{{.Subtitle}}</p>{{end}}
  <a class="btn" href="#final-cta">{{.CTALabel}}</a>
</section>{{end}}

{{define "footer"}}<footer class="footer">
  <p>{{.Labels.Copyright}}</p>
  <nav>
    <a href="{{.PrivacyHref}}">{{.Labels.Links.Privacy}}</a>
    <a href="{{.ImpressumHref}}">{{.Labels.Links.Contact}}</a>
  </nav>
</footer>{{end}}

{{define "legal"}}<section class="legal">
  <h1>{{.Title}}</h1>
  {{- range .Sections}}
  <div class="legal-section">
    {{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
    {{range .Paragraphs}}{{.}}{{end}}
  </div>
  {{- end}}
</section>{{end}}
`
