package tables

// Built-in pattern tables. Every list here can be overridden by a JSON
// file named in TablesConfig; these are the fallbacks.

// DefaultBiasPhrases returns bias phrase categories
func DefaultBiasPhrases() *Table {
	return NewTable(
		Entry{Key: "loaded_language", Terms: []string{
			"obviously", "clearly", "without a doubt", "certainly",
			"undoubtedly", "definitely", "absolutely", "everyone knows",
			"of course", "naturally", "inevitably", "indisputably",
		}},
		Entry{Key: "subjective_qualifiers", Terms: []string{
			"best", "worst", "terrible", "excellent", "horrible",
			"amazing", "awful", "extraordinary", "wonderful", "appalling",
		}},
		Entry{Key: "generalization", Terms: []string{
			"all", "none", "every", "always", "never", "everyone",
			"nobody", "everywhere", "anywhere", "throughout history",
		}},
		Entry{Key: "exaggeration", Terms: []string{
			"countless", "endless", "infinite", "unprecedented", "massive",
			"monumental", "epic", "colossal", "gigantic", "staggering",
		}},
	)
}

// DefaultPoliticalTerms returns left- and right-leaning term sets
func DefaultPoliticalTerms() *Table {
	return NewTable(
		Entry{Key: "left_leaning", Terms: []string{
			"progressive", "liberal", "social justice", "diversity",
			"equity", "inclusion", "structural racism", "climate crisis",
			"reproductive rights", "universal healthcare",
		}},
		Entry{Key: "right_leaning", Terms: []string{
			"conservative", "traditional values", "individual liberty",
			"free market", "fiscal responsibility", "religious freedom",
			"limited government", "family values", "immigration control",
		}},
	)
}

// DefaultEmotionalTriggers returns trigger words per emotion category
func DefaultEmotionalTriggers() *Table {
	return NewTable(
		Entry{Key: "fear", Terms: []string{
			"terrifying", "horrific", "dangerous", "deadly", "alarming",
			"frightening", "scary", "threat", "panic", "disaster", "crisis",
		}},
		Entry{Key: "anger", Terms: []string{
			"outrageous", "shocking", "appalling", "disgusting", "infuriating",
			"scandalous", "offensive", "betrayal", "corrupt", "unjust",
		}},
		Entry{Key: "joy", Terms: []string{
			"amazing", "incredible", "wonderful", "revolutionary", "breakthrough",
			"miraculous", "astonishing", "life-changing", "extraordinary",
		}},
		Entry{Key: "sadness", Terms: []string{
			"heartbreaking", "devastating", "tragic", "depressing", "sorrowful",
			"painful", "miserable", "grim", "hopeless",
		}},
	)
}

// DefaultUrgencyPatterns returns urgency phrasing regexes
func DefaultUrgencyPatterns() []string {
	return []string{
		`act now`, `limited time`, `urgent`, `breaking`, `time is running out`,
		`don't wait`, `last chance`, `immediately`, `soon`, `before it's too late`,
		`while supplies last`, `exclusive offer`, `today only`, `deadline`,
	}
}

// DefaultFearPatterns returns fear-based manipulation regexes
func DefaultFearPatterns() []string {
	return []string{
		`you can't afford to miss`, `warning`, `danger`, `risk`,
		`what you don't know`, `might be killing you`, `hidden dangers`,
		`protect yourself`, `fear of missing out`, `fomo`,
		`you will regret`, `devastating consequences`,
	}
}

// DefaultClickbaitPatterns returns clickbait template regexes
func DefaultClickbaitPatterns() []string {
	return []string{
		`(?:you won't believe|mind blowing|jaw dropping)`,
		`^\d+ (?:things|ways|reasons|facts|tips|tricks|ideas|secrets)`,
		`(?:number \d+|the last one) (?:will|could|can|may) (?:shock|surprise|amaze) you`,
		`what happens next (?:will|could|can|may) (?:shock|surprise|amaze) you`,
		`(?:doctors|experts|scientists) (?:hate|are afraid of) (?:this|him|her|them)`,
		`one (?:simple|weird|strange) trick`,
		`this (?:one|simple|weird|strange) trick`,
		`(?:shocking|surprising) (?:discovery|result|trick|tip|secret|fact)`,
		`(?:never|you should never|when not to) (?:do|try|attempt)`,
		`(?:this is why|the reason why|here's why)`,
		`(?:finally revealed|the truth about)`,
		`(?:secret|hidden) (?:trick|method|way|formula)`,
	}
}

// DefaultPropagandaTechniques returns regexes per propaganda technique
func DefaultPropagandaTechniques() *Table {
	return NewTable(
		Entry{Key: "name_calling", Terms: []string{
			`(?:libtard|snowflake|sheep|nazi|fascist|communist|socialist|radical|extremist|terrorist)`,
		}},
		Entry{Key: "glittering_generalities", Terms: []string{
			`(?:freedom|liberty|justice|patriotic|patriot|american values|family values)`,
		}},
		Entry{Key: "bandwagon", Terms: []string{
			`(?:everyone is|everybody is|everyone knows|everybody knows)`,
			`(?:most people|the majority|overwhelming majority)`,
		}},
		Entry{Key: "testimonial", Terms: []string{
			`(?:according to experts|experts say|scientists confirm|science says)`,
		}},
		Entry{Key: "plain_folks", Terms: []string{
			`(?:ordinary people|regular folks|hardworking americans|common sense)`,
		}},
		Entry{Key: "card_stacking", Terms: []string{
			`(?:on the other hand|let me be clear|make no mistake)`,
		}},
		Entry{Key: "transfer", Terms: []string{
			`(?:like the nazis|communist-style|stalinesque|hitler-like)`,
		}},
	)
}

// DefaultHedgingPatterns returns hedging language regexes
func DefaultHedgingPatterns() []string {
	return []string{
		`\b(?:may|might|could|possibly|perhaps|seems|appears|likely|unlikely)\b`,
		`\b(?:some|sometimes|often|usually|generally|frequently)\b`,
		`\b(?:alleged|supposedly|purportedly|reportedly|claimed)\b`,
		`\b(?:sort of|kind of|relatively|comparatively|more or less)\b`,
	}
}

// DefaultSensationalistPatterns returns sensationalist language regexes
func DefaultSensationalistPatterns() []string {
	return []string{
		`\b(?:bombshell|explosive|destroying|obliterates|annihilates|devastating)\b`,
		`\b(?:insane|incredible|unbelievable|stunning|mind-blowing|jaw-dropping)\b`,
		`\b(?:game-changing|earth-shattering|revolutionary|ground-breaking)\b`,
		`\b(?:massive|enormous|gigantic|colossal|record-breaking|unprecedented)\b`,
		`\b(?:catastrophic|disastrous|horrific|terrifying|apocalyptic|extinction)\b`,
		`\b(?:meltdown|breaking news|urgent|emergency|critical|crucial)\b`,
	}
}
