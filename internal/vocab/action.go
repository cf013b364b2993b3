package vocab

// Action is a named action from the combat rules. Display strings keep the
// casing used in rules text so that only real action names are highlighted.
type Action int

const (
	ActionAction Action = iota
	ActionBonusAction
	ActionReaction
	ActionAttack
	ActionDash
	ActionDisengage
	ActionDodge
	ActionHelp
	ActionHide
	ActionReady
	ActionSearch
	ActionUseAnObject
	numActions
)

var actionTable = [...]entry{
	ActionAction:      {id: "action", fr: "action", en: "action"},
	ActionBonusAction: {id: "bonus_action", fr: "action bonus", en: "bonus action"},
	ActionReaction:    {id: "reaction", fr: "réaction", en: "reaction"},
	ActionAttack:      {id: "attack", fr: "Attaquer", en: "Attack"},
	ActionDash:        {id: "dash", fr: "Foncer", en: "Dash"},
	ActionDisengage:   {id: "disengage", fr: "Se désengager", en: "Disengage"},
	ActionDodge:       {id: "dodge", fr: "Esquiver", en: "Dodge"},
	ActionHelp:        {id: "help", fr: "Aider", en: "Help"},
	ActionHide:        {id: "hide", fr: "Se cacher", en: "Hide"},
	ActionReady:       {id: "ready", fr: "Se tenir prêt", en: "Ready"},
	ActionSearch:      {id: "search", fr: "Chercher", en: "Search"},
	ActionUseAnObject: {id: "use_an_object", fr: "Utiliser un objet", en: "Use an Object"},
}

var _ = [1]struct{}{}[len(actionTable)-int(numActions)]

var actions = newVocabulary[Action]("action", actionTable[:])

func (a Action) Translate(lang Language) string { return actions.translate(a, lang) }

// ID is the language independent name of the action
func (a Action) ID() string     { return actions.entry(a).id }
func (a Action) String() string { return a.ID() }

// ParseAction looks up an action by its display name in lang
func ParseAction(text string, lang Language) (Action, error) {
	return actions.parse(text, lang)
}

// ActionPattern returns a regexp alternation of every action name in lang,
// longest first so that "bonus action" wins over "action".
func ActionPattern(lang Language) string { return actions.pattern[lang] }

// AllActions returns every action in declaration order
func AllActions() []Action { return actions.members() }
