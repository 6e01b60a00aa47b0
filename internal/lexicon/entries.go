package lexicon

import "github.com/eduventuring-commits/word-trainer/internal/model"

// entries is the curated decomposition table, keyed by lowercase word.
// Cues use schwa "uh" where vowels reduce and "shun" for -tion/-sion.
var entries = map[string]Entry{
	// port root
	"transport": {
		Syllables:  []string{"trans", "port"},
		SoundCues:  []string{"/tranz/", "/port/"},
		Morphemes:  []string{"trans", "port"},
		MorphCues:  []string{"/tranz/", "/port/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"portable": {
		Syllables:  []string{"por", "ta", "ble"},
		SoundCues:  []string{"/por/", "/tuh/", "/buhl/"},
		Morphemes:  []string{"port", "able"},
		MorphCues:  []string{"/port/", "/uh-buhl/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"import": {
		Syllables:  []string{"im", "port"},
		SoundCues:  []string{"/im/", "/port/"},
		Morphemes:  []string{"im", "port"},
		MorphCues:  []string{"/im/", "/port/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"report": {
		Syllables:  []string{"re", "port"},
		SoundCues:  []string{"/rih/", "/port/"},
		Morphemes:  []string{"re", "port"},
		MorphCues:  []string{"/rih/", "/port/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"export": {
		Syllables:  []string{"ex", "port"},
		SoundCues:  []string{"/eks/", "/port/"},
		Morphemes:  []string{"ex", "port"},
		MorphCues:  []string{"/eks/", "/port/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"portfolio": {
		Syllables:  []string{"port", "fo", "li", "o"},
		SoundCues:  []string{"/port/", "/foh/", "/lee/", "/oh/"},
		Morphemes:  []string{"port", "folio"},
		MorphCues:  []string{"/port/", "/foh-lee-oh/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleRoot},
	},

	// vis root
	"visible": {
		Syllables:  []string{"vis", "i", "ble"},
		SoundCues:  []string{"/viz/", "/ih/", "/buhl/"},
		Morphemes:  []string{"vis", "ible"},
		MorphCues:  []string{"/viz/", "/ih-buhl/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"invisible": {
		Syllables:  []string{"in", "vis", "i", "ble"},
		SoundCues:  []string{"/in/", "/viz/", "/ih/", "/buhl/"},
		Morphemes:  []string{"in", "vis", "ible"},
		MorphCues:  []string{"/in/", "/viz/", "/ih-buhl/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"revise": {
		Syllables:  []string{"re", "vise"},
		SoundCues:  []string{"/rih/", "/vize/"},
		Morphemes:  []string{"re", "vise"},
		MorphCues:  []string{"/rih/", "/vize/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"supervise": {
		Syllables:  []string{"su", "per", "vise"},
		SoundCues:  []string{"/soo/", "/per/", "/vize/"},
		Morphemes:  []string{"super", "vise"},
		MorphCues:  []string{"/soo-per/", "/vize/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"preview": {
		Syllables:  []string{"pre", "view"},
		SoundCues:  []string{"/pree/", "/vyoo/"},
		Morphemes:  []string{"pre", "view"},
		MorphCues:  []string{"/pree/", "/vyoo/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"vision": {
		Syllables:  []string{"vi", "sion"},
		SoundCues:  []string{"/vizh/", "/uhn/"},
		Morphemes:  []string{"vis", "ion"},
		MorphCues:  []string{"/viz/", "/yuhn/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"revision": {
		Syllables:  []string{"re", "vi", "sion"},
		SoundCues:  []string{"/rih/", "/vizh/", "/uhn/"},
		Morphemes:  []string{"re", "vis", "ion"},
		MorphCues:  []string{"/rih/", "/viz/", "/yuhn/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},

	// rupt root
	"interrupt": {
		Syllables:  []string{"in", "ter", "rupt"},
		SoundCues:  []string{"/in/", "/ter/", "/rupt/"},
		Morphemes:  []string{"inter", "rupt"},
		MorphCues:  []string{"/in-ter/", "/rupt/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"erupt": {
		Syllables:  []string{"e", "rupt"},
		SoundCues:  []string{"/ih/", "/rupt/"},
		Morphemes:  []string{"e", "rupt"},
		MorphCues:  []string{"/ih/", "/rupt/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"disrupt": {
		Syllables:  []string{"dis", "rupt"},
		SoundCues:  []string{"/dis/", "/rupt/"},
		Morphemes:  []string{"dis", "rupt"},
		MorphCues:  []string{"/dis/", "/rupt/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"corrupt": {
		Syllables:  []string{"cor", "rupt"},
		SoundCues:  []string{"/kor/", "/rupt/"},
		Morphemes:  []string{"cor", "rupt"},
		MorphCues:  []string{"/kor/", "/rupt/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"disruption": {
		Syllables:  []string{"dis", "rup", "tion"},
		SoundCues:  []string{"/dis/", "/rup/", "/shun/"},
		Morphemes:  []string{"dis", "rupt", "ion"},
		MorphCues:  []string{"/dis/", "/rupt/", "/shun/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"eruptive": {
		Syllables:  []string{"e", "rup", "tive"},
		SoundCues:  []string{"/ih/", "/rup/", "/tiv/"},
		Morphemes:  []string{"e", "rupt", "ive"},
		MorphCues:  []string{"/ih/", "/rupt/", "/tiv/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},

	// scrib / script root
	"describe": {
		Syllables:  []string{"de", "scribe"},
		SoundCues:  []string{"/dih/", "/skribe/"},
		Morphemes:  []string{"de", "scribe"},
		MorphCues:  []string{"/dih/", "/skribe/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"prescription": {
		Syllables:  []string{"pre", "scrip", "tion"},
		SoundCues:  []string{"/pree/", "/skrip/", "/shun/"},
		Morphemes:  []string{"pre", "script", "ion"},
		MorphCues:  []string{"/pree/", "/skript/", "/shun/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"inscription": {
		Syllables:  []string{"in", "scrip", "tion"},
		SoundCues:  []string{"/in/", "/skrip/", "/shun/"},
		Morphemes:  []string{"in", "script", "ion"},
		MorphCues:  []string{"/in/", "/skript/", "/shun/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"manuscript": {
		Syllables:  []string{"man", "u", "script"},
		SoundCues:  []string{"/man/", "/yoo/", "/skript/"},
		Morphemes:  []string{"manu", "script"},
		MorphCues:  []string{"/man-yoo/", "/skript/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleRoot},
	},
	"description": {
		Syllables:  []string{"de", "scrip", "tion"},
		SoundCues:  []string{"/dih/", "/skrip/", "/shun/"},
		Morphemes:  []string{"de", "script", "ion"},
		MorphCues:  []string{"/dih/", "/skript/", "/shun/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"subscription": {
		Syllables:  []string{"sub", "scrip", "tion"},
		SoundCues:  []string{"/sub/", "/skrip/", "/shun/"},
		Morphemes:  []string{"sub", "script", "ion"},
		MorphCues:  []string{"/sub/", "/skript/", "/shun/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},

	// dict root
	"predict": {
		Syllables:  []string{"pre", "dict"},
		SoundCues:  []string{"/prih/", "/dikt/"},
		Morphemes:  []string{"pre", "dict"},
		MorphCues:  []string{"/prih/", "/dikt/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"contradiction": {
		Syllables:  []string{"con", "tra", "dic", "tion"},
		SoundCues:  []string{"/kon/", "/truh/", "/dik/", "/shun/"},
		Morphemes:  []string{"contra", "dict", "ion"},
		MorphCues:  []string{"/kon-truh/", "/dikt/", "/shun/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"dictate": {
		Syllables:  []string{"dic", "tate"},
		SoundCues:  []string{"/dik/", "/tayt/"},
		Morphemes:  []string{"dict", "ate"},
		MorphCues:  []string{"/dikt/", "/ayt/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"prediction": {
		Syllables:  []string{"pre", "dic", "tion"},
		SoundCues:  []string{"/prih/", "/dik/", "/shun/"},
		Morphemes:  []string{"pre", "dict", "ion"},
		MorphCues:  []string{"/prih/", "/dikt/", "/shun/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"dictator": {
		Syllables:  []string{"dic", "ta", "tor"},
		SoundCues:  []string{"/dik/", "/tay/", "/ter/"},
		Morphemes:  []string{"dict", "ator"},
		MorphCues:  []string{"/dikt/", "/ay-ter/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},

	// struct root
	"instruct": {
		Syllables:  []string{"in", "struct"},
		SoundCues:  []string{"/in/", "/strukt/"},
		Morphemes:  []string{"in", "struct"},
		MorphCues:  []string{"/in/", "/strukt/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"construction": {
		Syllables:  []string{"con", "struc", "tion"},
		SoundCues:  []string{"/kon/", "/struk/", "/shun/"},
		Morphemes:  []string{"con", "struct", "ion"},
		MorphCues:  []string{"/kon/", "/strukt/", "/shun/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"destructive": {
		Syllables:  []string{"de", "struc", "tive"},
		SoundCues:  []string{"/dih/", "/struk/", "/tiv/"},
		Morphemes:  []string{"de", "struct", "ive"},
		MorphCues:  []string{"/dih/", "/strukt/", "/tiv/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"infrastructure": {
		Syllables:  []string{"in", "fra", "struc", "ture"},
		SoundCues:  []string{"/in/", "/fruh/", "/struk/", "/cher/"},
		Morphemes:  []string{"infra", "struct", "ure"},
		MorphCues:  []string{"/in-fruh/", "/strukt/", "/cher/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"instruction": {
		Syllables:  []string{"in", "struc", "tion"},
		SoundCues:  []string{"/in/", "/struk/", "/shun/"},
		Morphemes:  []string{"in", "struct", "ion"},
		MorphCues:  []string{"/in/", "/strukt/", "/shun/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"restructure": {
		Syllables:  []string{"re", "struc", "ture"},
		SoundCues:  []string{"/rih/", "/struk/", "/cher/"},
		Morphemes:  []string{"re", "struct", "ure"},
		MorphCues:  []string{"/rih/", "/strukt/", "/cher/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"structure": {
		Syllables:  []string{"struc", "ture"},
		SoundCues:  []string{"/struk/", "/cher/"},
		Morphemes:  []string{"struct", "ure"},
		MorphCues:  []string{"/strukt/", "/cher/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},

	// act root
	"reaction": {
		Syllables:  []string{"re", "ac", "tion"},
		SoundCues:  []string{"/rih/", "/ak/", "/shun/"},
		Morphemes:  []string{"re", "act", "ion"},
		MorphCues:  []string{"/rih/", "/akt/", "/shun/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"interact": {
		Syllables:  []string{"in", "ter", "act"},
		SoundCues:  []string{"/in/", "/ter/", "/akt/"},
		Morphemes:  []string{"inter", "act"},
		MorphCues:  []string{"/in-ter/", "/akt/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"inactive": {
		Syllables:  []string{"in", "ac", "tive"},
		SoundCues:  []string{"/in/", "/ak/", "/tiv/"},
		Morphemes:  []string{"in", "act", "ive"},
		MorphCues:  []string{"/in/", "/akt/", "/tiv/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"action": {
		Syllables:  []string{"ac", "tion"},
		SoundCues:  []string{"/ak/", "/shun/"},
		Morphemes:  []string{"act", "ion"},
		MorphCues:  []string{"/akt/", "/shun/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"interaction": {
		Syllables:  []string{"in", "ter", "ac", "tion"},
		SoundCues:  []string{"/in/", "/ter/", "/ak/", "/shun/"},
		Morphemes:  []string{"inter", "act", "ion"},
		MorphCues:  []string{"/in-ter/", "/akt/", "/shun/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"actor": {
		Syllables:  []string{"ac", "tor"},
		SoundCues:  []string{"/ak/", "/ter/"},
		Morphemes:  []string{"act", "or"},
		MorphCues:  []string{"/akt/", "/er/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"activist": {
		Syllables:  []string{"ac", "tiv", "ist"},
		SoundCues:  []string{"/ak/", "/tiv/", "/ist/"},
		Morphemes:  []string{"act", "iv", "ist"},
		MorphCues:  []string{"/akt/", "/iv/", "/ist/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix, model.RoleSuffix},
	},
	"counteract": {
		Syllables:  []string{"coun", "ter", "act"},
		SoundCues:  []string{"/kown/", "/ter/", "/akt/"},
		Morphemes:  []string{"counter", "act"},
		MorphCues:  []string{"/kown-ter/", "/akt/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},

	// form root
	"reform": {
		Syllables:  []string{"re", "form"},
		SoundCues:  []string{"/rih/", "/form/"},
		Morphemes:  []string{"re", "form"},
		MorphCues:  []string{"/rih/", "/form/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"transform": {
		Syllables:  []string{"trans", "form"},
		SoundCues:  []string{"/tranz/", "/form/"},
		Morphemes:  []string{"trans", "form"},
		MorphCues:  []string{"/tranz/", "/form/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"uniform": {
		Syllables:  []string{"u", "ni", "form"},
		SoundCues:  []string{"/yoo/", "/nih/", "/form/"},
		Morphemes:  []string{"uni", "form"},
		MorphCues:  []string{"/yoo-nih/", "/form/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"transformation": {
		Syllables:  []string{"trans", "for", "ma", "tion"},
		SoundCues:  []string{"/tranz/", "/for/", "/may/", "/shun/"},
		Morphemes:  []string{"trans", "form", "ation"},
		MorphCues:  []string{"/tranz/", "/form/", "/ay-shun/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"formation": {
		Syllables:  []string{"for", "ma", "tion"},
		SoundCues:  []string{"/for/", "/may/", "/shun/"},
		Morphemes:  []string{"form", "ation"},
		MorphCues:  []string{"/form/", "/ay-shun/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},

	// mit / miss root
	"submit": {
		Syllables:  []string{"sub", "mit"},
		SoundCues:  []string{"/sub/", "/mit/"},
		Morphemes:  []string{"sub", "mit"},
		MorphCues:  []string{"/sub/", "/mit/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"transmit": {
		Syllables:  []string{"trans", "mit"},
		SoundCues:  []string{"/tranz/", "/mit/"},
		Morphemes:  []string{"trans", "mit"},
		MorphCues:  []string{"/tranz/", "/mit/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"permission": {
		Syllables:  []string{"per", "mis", "sion"},
		SoundCues:  []string{"/per/", "/mis/", "/shun/"},
		Morphemes:  []string{"per", "miss", "ion"},
		MorphCues:  []string{"/per/", "/mis/", "/shun/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"mission": {
		Syllables:  []string{"mis", "sion"},
		SoundCues:  []string{"/mish/", "/uhn/"},
		Morphemes:  []string{"miss", "ion"},
		MorphCues:  []string{"/mis/", "/shun/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"submission": {
		Syllables:  []string{"sub", "mis", "sion"},
		SoundCues:  []string{"/sub/", "/mish/", "/uhn/"},
		Morphemes:  []string{"sub", "miss", "ion"},
		MorphCues:  []string{"/sub/", "/mis/", "/shun/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},

	// aud root
	"audience": {
		Syllables:  []string{"au", "di", "ence"},
		SoundCues:  []string{"/aw/", "/dee/", "/ents/"},
		Morphemes:  []string{"aud", "ience"},
		MorphCues:  []string{"/awd/", "/ee-ents/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"audible": {
		Syllables:  []string{"au", "di", "ble"},
		SoundCues:  []string{"/aw/", "/dih/", "/buhl/"},
		Morphemes:  []string{"aud", "ible"},
		MorphCues:  []string{"/awd/", "/ih-buhl/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"auditorium": {
		Syllables:  []string{"au", "di", "to", "ri", "um"},
		SoundCues:  []string{"/aw/", "/dih/", "/tor/", "/ee/", "/um/"},
		Morphemes:  []string{"audi", "torium"},
		MorphCues:  []string{"/aw-dih/", "/tor-ee-um/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"auditory": {
		Syllables:  []string{"au", "di", "to", "ry"},
		SoundCues:  []string{"/aw/", "/dih/", "/tor/", "/ee/"},
		Morphemes:  []string{"aud", "itory"},
		MorphCues:  []string{"/awd/", "/ih-tor-ee/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"audition": {
		Syllables:  []string{"au", "di", "tion"},
		SoundCues:  []string{"/aw/", "/dih/", "/shun/"},
		Morphemes:  []string{"aud", "ition"},
		MorphCues:  []string{"/awd/", "/ih-shun/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"inaudible": {
		Syllables:  []string{"in", "au", "di", "ble"},
		SoundCues:  []string{"/in/", "/aw/", "/dih/", "/buhl/"},
		Morphemes:  []string{"in", "aud", "ible"},
		MorphCues:  []string{"/in/", "/awd/", "/ih-buhl/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},

	// spect / spec root
	"inspect": {
		Syllables:  []string{"in", "spect"},
		SoundCues:  []string{"/in/", "/spekt/"},
		Morphemes:  []string{"in", "spect"},
		MorphCues:  []string{"/in/", "/spekt/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"spectator": {
		Syllables:  []string{"spec", "ta", "tor"},
		SoundCues:  []string{"/spek/", "/tay/", "/ter/"},
		Morphemes:  []string{"spect", "ator"},
		MorphCues:  []string{"/spekt/", "/ay-ter/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"perspective": {
		Syllables:  []string{"per", "spec", "tive"},
		SoundCues:  []string{"/per/", "/spek/", "/tiv/"},
		Morphemes:  []string{"per", "spec", "tive"},
		MorphCues:  []string{"/per/", "/spek/", "/tiv/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"speculate": {
		Syllables:  []string{"spec", "u", "late"},
		SoundCues:  []string{"/spek/", "/yuh/", "/layt/"},
		Morphemes:  []string{"spec", "ulate"},
		MorphCues:  []string{"/spek/", "/yuh-layt/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"spectacle": {
		Syllables:  []string{"spec", "ta", "cle"},
		SoundCues:  []string{"/spek/", "/tuh/", "/kul/"},
		Morphemes:  []string{"spect", "acle"},
		MorphCues:  []string{"/spekt/", "/uh-kul/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"inspector": {
		Syllables:  []string{"in", "spec", "tor"},
		SoundCues:  []string{"/in/", "/spek/", "/ter/"},
		Morphemes:  []string{"in", "spect", "or"},
		MorphCues:  []string{"/in/", "/spekt/", "/er/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},

	// fer root
	"transfer": {
		Syllables:  []string{"trans", "fer"},
		SoundCues:  []string{"/tranz/", "/fer/"},
		Morphemes:  []string{"trans", "fer"},
		MorphCues:  []string{"/tranz/", "/fer/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"prefer": {
		Syllables:  []string{"pre", "fer"},
		SoundCues:  []string{"/prih/", "/fer/"},
		Morphemes:  []string{"pre", "fer"},
		MorphCues:  []string{"/prih/", "/fer/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"refer": {
		Syllables:  []string{"re", "fer"},
		SoundCues:  []string{"/rih/", "/fer/"},
		Morphemes:  []string{"re", "fer"},
		MorphCues:  []string{"/rih/", "/fer/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"conference": {
		Syllables:  []string{"con", "fer", "ence"},
		SoundCues:  []string{"/kon/", "/fer/", "/ents/"},
		Morphemes:  []string{"con", "fer", "ence"},
		MorphCues:  []string{"/kon/", "/fer/", "/ents/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"interference": {
		Syllables:  []string{"in", "ter", "fer", "ence"},
		SoundCues:  []string{"/in/", "/ter/", "/fer/", "/ents/"},
		Morphemes:  []string{"inter", "fer", "ence"},
		MorphCues:  []string{"/in-ter/", "/fer/", "/ents/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},

	// un- / dis- / re- / mis- prefix words
	"rewrite": {
		Syllables:  []string{"re", "write"},
		SoundCues:  []string{"/rih/", "/rite/"},
		Morphemes:  []string{"re", "write"},
		MorphCues:  []string{"/rih/", "/rite/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"unclear": {
		Syllables:  []string{"un", "clear"},
		SoundCues:  []string{"/un/", "/kleer/"},
		Morphemes:  []string{"un", "clear"},
		MorphCues:  []string{"/un/", "/kleer/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"unfinished": {
		Syllables:  []string{"un", "fin", "ished"},
		SoundCues:  []string{"/un/", "/fin/", "/isht/"},
		Morphemes:  []string{"un", "finished"},
		MorphCues:  []string{"/un/", "/fin-isht/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"disagree": {
		Syllables:  []string{"dis", "a", "gree"},
		SoundCues:  []string{"/dis/", "/uh/", "/gree/"},
		Morphemes:  []string{"dis", "agree"},
		MorphCues:  []string{"/dis/", "/uh-gree/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"disconnect": {
		Syllables:  []string{"dis", "con", "nect"},
		SoundCues:  []string{"/dis/", "/kon/", "/nekt/"},
		Morphemes:  []string{"dis", "connect"},
		MorphCues:  []string{"/dis/", "/kuh-nekt/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"submarine": {
		Syllables:  []string{"sub", "ma", "rine"},
		SoundCues:  []string{"/sub/", "/muh/", "/reen/"},
		Morphemes:  []string{"sub", "marine"},
		MorphCues:  []string{"/sub/", "/muh-reen/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"subtract": {
		Syllables:  []string{"sub", "tract"},
		SoundCues:  []string{"/sub/", "/trakt/"},
		Morphemes:  []string{"sub", "tract"},
		MorphCues:  []string{"/sub/", "/trakt/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"interstate": {
		Syllables:  []string{"in", "ter", "state"},
		SoundCues:  []string{"/in/", "/ter/", "/stayt/"},
		Morphemes:  []string{"inter", "state"},
		MorphCues:  []string{"/in-ter/", "/stayt/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"impossible": {
		Syllables:  []string{"im", "pos", "si", "ble"},
		SoundCues:  []string{"/im/", "/pos/", "/sih/", "/buhl/"},
		Morphemes:  []string{"im", "possible"},
		MorphCues:  []string{"/im/", "/pos-ih-buhl/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"incomplete": {
		Syllables:  []string{"in", "com", "plete"},
		SoundCues:  []string{"/in/", "/kum/", "/pleet/"},
		Morphemes:  []string{"in", "complete"},
		MorphCues:  []string{"/in/", "/kum-pleet/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"misspell": {
		Syllables:  []string{"mis", "spell"},
		SoundCues:  []string{"/mis/", "/spel/"},
		Morphemes:  []string{"mis", "spell"},
		MorphCues:  []string{"/mis/", "/spel/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"misunderstand": {
		Syllables:  []string{"mis", "un", "der", "stand"},
		SoundCues:  []string{"/mis/", "/un/", "/der/", "/stand/"},
		Morphemes:  []string{"mis", "understand"},
		MorphCues:  []string{"/mis/", "/un-der-stand/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"misconduct": {
		Syllables:  []string{"mis", "con", "duct"},
		SoundCues:  []string{"/mis/", "/kon/", "/dukt/"},
		Morphemes:  []string{"mis", "conduct"},
		MorphCues:  []string{"/mis/", "/kon-dukt/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},

	// Suffix words
	"movement": {
		Syllables:  []string{"move", "ment"},
		SoundCues:  []string{"/moov/", "/ment/"},
		Morphemes:  []string{"move", "ment"},
		MorphCues:  []string{"/moov/", "/ment/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"agreement": {
		Syllables:  []string{"a", "gree", "ment"},
		SoundCues:  []string{"/uh/", "/gree/", "/ment/"},
		Morphemes:  []string{"agree", "ment"},
		MorphCues:  []string{"/uh-gree/", "/ment/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"statement": {
		Syllables:  []string{"state", "ment"},
		SoundCues:  []string{"/stayt/", "/ment/"},
		Morphemes:  []string{"state", "ment"},
		MorphCues:  []string{"/stayt/", "/ment/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"kindness": {
		Syllables:  []string{"kind", "ness"},
		SoundCues:  []string{"/kind/", "/ness/"},
		Morphemes:  []string{"kind", "ness"},
		MorphCues:  []string{"/kind/", "/ness/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"darkness": {
		Syllables:  []string{"dark", "ness"},
		SoundCues:  []string{"/dark/", "/ness/"},
		Morphemes:  []string{"dark", "ness"},
		MorphCues:  []string{"/dark/", "/ness/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"awareness": {
		Syllables:  []string{"a", "ware", "ness"},
		SoundCues:  []string{"/uh/", "/wair/", "/ness/"},
		Morphemes:  []string{"aware", "ness"},
		MorphCues:  []string{"/uh-wair/", "/ness/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"helpful": {
		Syllables:  []string{"help", "ful"},
		SoundCues:  []string{"/help/", "/ful/"},
		Morphemes:  []string{"help", "ful"},
		MorphCues:  []string{"/help/", "/ful/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"powerful": {
		Syllables:  []string{"pow", "er", "ful"},
		SoundCues:  []string{"/pow/", "/er/", "/ful/"},
		Morphemes:  []string{"power", "ful"},
		MorphCues:  []string{"/pow-er/", "/ful/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"meaningful": {
		Syllables:  []string{"mean", "ing", "ful"},
		SoundCues:  []string{"/meen/", "/ing/", "/ful/"},
		Morphemes:  []string{"meaning", "ful"},
		MorphCues:  []string{"/meen-ing/", "/ful/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"homeless": {
		Syllables:  []string{"home", "less"},
		SoundCues:  []string{"/hohm/", "/les/"},
		Morphemes:  []string{"home", "less"},
		MorphCues:  []string{"/hohm/", "/les/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"careless": {
		Syllables:  []string{"care", "less"},
		SoundCues:  []string{"/kair/", "/les/"},
		Morphemes:  []string{"care", "less"},
		MorphCues:  []string{"/kair/", "/les/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"powerless": {
		Syllables:  []string{"pow", "er", "less"},
		SoundCues:  []string{"/pow/", "/er/", "/les/"},
		Morphemes:  []string{"power", "less"},
		MorphCues:  []string{"/pow-er/", "/les/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"readable": {
		Syllables:  []string{"read", "a", "ble"},
		SoundCues:  []string{"/reed/", "/uh/", "/buhl/"},
		Morphemes:  []string{"read", "able"},
		MorphCues:  []string{"/reed/", "/uh-buhl/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"comfortable": {
		Syllables:  []string{"com", "fort", "a", "ble"},
		SoundCues:  []string{"/kum/", "/fert/", "/uh/", "/buhl/"},
		Morphemes:  []string{"comfort", "able"},
		MorphCues:  []string{"/kum-fert/", "/uh-buhl/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"remarkable": {
		Syllables:  []string{"re", "mark", "a", "ble"},
		SoundCues:  []string{"/rih/", "/mark/", "/uh/", "/buhl/"},
		Morphemes:  []string{"re", "mark", "able"},
		MorphCues:  []string{"/rih/", "/mark/", "/uh-buhl/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot, model.RoleSuffix},
	},
	"teacher": {
		Syllables:  []string{"teach", "er"},
		SoundCues:  []string{"/teech/", "/er/"},
		Morphemes:  []string{"teach", "er"},
		MorphCues:  []string{"/teech/", "/er/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"quickly": {
		Syllables:  []string{"quick", "ly"},
		SoundCues:  []string{"/kwik/", "/lee/"},
		Morphemes:  []string{"quick", "ly"},
		MorphCues:  []string{"/kwik/", "/lee/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"clearly": {
		Syllables:  []string{"clear", "ly"},
		SoundCues:  []string{"/kleer/", "/lee/"},
		Morphemes:  []string{"clear", "ly"},
		MorphCues:  []string{"/kleer/", "/lee/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"accurately": {
		Syllables:  []string{"ac", "cu", "rate", "ly"},
		SoundCues:  []string{"/ak/", "/kyuh/", "/rit/", "/lee/"},
		Morphemes:  []string{"accurate", "ly"},
		MorphCues:  []string{"/ak-kyuh-rit/", "/lee/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"scientist": {
		Syllables:  []string{"sci", "en", "tist"},
		SoundCues:  []string{"/sie/", "/en/", "/tist/"},
		Morphemes:  []string{"scient", "ist"},
		MorphCues:  []string{"/sie-ent/", "/ist/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"dangerous": {
		Syllables:  []string{"dan", "ger", "ous"},
		SoundCues:  []string{"/dayn/", "/jer/", "/us/"},
		Morphemes:  []string{"danger", "ous"},
		MorphCues:  []string{"/dayn-jer/", "/us/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"famous": {
		Syllables:  []string{"fa", "mous"},
		SoundCues:  []string{"/fay/", "/mus/"},
		Morphemes:  []string{"fam", "ous"},
		MorphCues:  []string{"/faym/", "/us/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},
	"courageous": {
		Syllables:  []string{"cou", "ra", "geous"},
		SoundCues:  []string{"/kuh/", "/ray/", "/jus/"},
		Morphemes:  []string{"courage", "ous"},
		MorphCues:  []string{"/ker-ij/", "/us/"},
		MorphRoles: []model.Role{model.RoleRoot, model.RoleSuffix},
	},

	// Other prefix words
	"nonfiction": {
		Syllables:  []string{"non", "fic", "tion"},
		SoundCues:  []string{"/non/", "/fik/", "/shun/"},
		Morphemes:  []string{"non", "fiction"},
		MorphCues:  []string{"/non/", "/fik-shun/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"semifinal": {
		Syllables:  []string{"sem", "i", "fi", "nal"},
		SoundCues:  []string{"/sem/", "/ee/", "/fie/", "/nul/"},
		Morphemes:  []string{"semi", "final"},
		MorphCues:  []string{"/sem-ee/", "/fie-nul/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"multicultural": {
		Syllables:  []string{"mul", "ti", "cul", "tur", "al"},
		SoundCues:  []string{"/mul/", "/tih/", "/kul/", "/cher/", "/ul/"},
		Morphemes:  []string{"multi", "cultural"},
		MorphCues:  []string{"/mul-tih/", "/kul-cher-ul/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"bilingual": {
		Syllables:  []string{"bi", "lin", "gual"},
		SoundCues:  []string{"/bie/", "/ling/", "/gwul/"},
		Morphemes:  []string{"bi", "lingual"},
		MorphCues:  []string{"/bie/", "/ling-gwul/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"postwar": {
		Syllables:  []string{"post", "war"},
		SoundCues:  []string{"/pohst/", "/wor/"},
		Morphemes:  []string{"post", "war"},
		MorphCues:  []string{"/pohst/", "/wor/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
	"context": {
		Syllables:  []string{"con", "text"},
		SoundCues:  []string{"/kon/", "/tekst/"},
		Morphemes:  []string{"con", "text"},
		MorphCues:  []string{"/kon/", "/tekst/"},
		MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
	},
}
