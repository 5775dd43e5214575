package classlint

import "regexp"

// utilityPattern is one entry in the builtin utility catalog: a named,
// anchored pattern for a family of atomic-CSS token shapes.
type utilityPattern struct {
	name string
	re   *regexp.Regexp
}

// builtinUtilities is the catalog of common atomic-CSS token shapes. The
// catalog is illustrative, not authoritative: a match on any entry is
// sufficient, and callers can extend the set through Config.CustomUtilities.
// Order within the slice carries no meaning.
var builtinUtilities = []utilityPattern{
	// Layout display modes: flex, grid, hidden, inline-block, ...
	{"display", regexp.MustCompile(`^(?:block|inline|inline-block|flex|inline-flex|grid|inline-grid|table|flow-root|contents|hidden)$`)},

	// Positioning: absolute, sticky, top-0, inset-4, z-10
	{"position", regexp.MustCompile(`^(?:static|fixed|absolute|relative|sticky)$`)},
	{"inset", regexp.MustCompile(`^(?:inset|top|right|bottom|left)-(?:\d+(?:\.\d+)?|px|auto|full)$`)},
	{"z-index", regexp.MustCompile(`^z-(?:\d+|auto)$`)},

	// Spacing: margin and padding with optional side/axis and numeric suffix
	// (mt-2, px-4, m-auto)
	{"spacing", regexp.MustCompile(`^(?:m|p)(?:t|r|b|l|x|y)?-(?:\d+(?:\.\d+)?|px|auto)$`)},
	{"space-between", regexp.MustCompile(`^space-(?:x|y)-(?:\d+|px)$`)},

	// Sizing: w-4, h-full, min-w-0, max-h-screen, w-1/2
	{"sizing", regexp.MustCompile(`^(?:min-|max-)?(?:w|h)-(?:\d+(?:\.\d+)?|px|auto|full|screen|min|max|fit|\d+/\d+)$`)},

	// Flexbox and grid: flex-col, justify-between, items-center, gap-4,
	// grid-cols-3, col-span-2
	{"flex", regexp.MustCompile(`^flex-(?:row|col|row-reverse|col-reverse|wrap|nowrap|wrap-reverse|1|auto|initial|none|grow|shrink)$`)},
	{"grid", regexp.MustCompile(`^(?:grid-(?:cols|rows)-(?:\d+|none)|(?:col|row)-span-(?:\d+|full)|(?:col|row)-(?:start|end)-(?:\d+|auto))$`)},
	{"gap", regexp.MustCompile(`^gap(?:-(?:x|y))?-(?:\d+(?:\.\d+)?|px)$`)},
	{"alignment", regexp.MustCompile(`^(?:justify-(?:start|end|center|between|around|evenly|stretch)|items-(?:start|end|center|baseline|stretch)|content-(?:start|end|center|between|around|evenly)|self-(?:auto|start|end|center|stretch|baseline))$`)},

	// Typography: text-lg, font-bold, leading-tight, tracking-wide,
	// uppercase, truncate
	{"font-size", regexp.MustCompile(`^text-(?:xs|sm|base|lg|xl|\dxl)$`)},
	{"text-align", regexp.MustCompile(`^text-(?:left|center|right|justify)$`)},
	{"font", regexp.MustCompile(`^font-(?:thin|extralight|light|normal|medium|semibold|bold|extrabold|black|sans|serif|mono)$`)},
	{"leading", regexp.MustCompile(`^leading-(?:none|tight|snug|normal|relaxed|loose|\d+)$`)},
	{"tracking", regexp.MustCompile(`^tracking-(?:tighter|tight|normal|wide|wider|widest)$`)},
	{"text-style", regexp.MustCompile(`^(?:italic|not-italic|underline|overline|line-through|no-underline|uppercase|lowercase|capitalize|normal-case|truncate|antialiased)$`)},
	{"whitespace", regexp.MustCompile(`^(?:whitespace-(?:normal|nowrap|pre|pre-line|pre-wrap)|break-(?:normal|words|all))$`)},

	// Color: text-red-500, bg-white, border-gray-200, fill-current
	{"color", regexp.MustCompile(`^(?:text|bg|border|fill|stroke|ring|divide)-(?:[a-z]+-\d{2,3}|white|black|transparent|current|inherit)$`)},

	// Effects: shadow-md, rounded-lg, opacity-50, blur-sm
	{"shadow", regexp.MustCompile(`^shadow(?:-(?:sm|md|lg|xl|2xl|inner|none))?$`)},
	{"rounded", regexp.MustCompile(`^rounded(?:-(?:t|r|b|l|tl|tr|br|bl))?(?:-(?:sm|md|lg|xl|2xl|3xl|full|none))?$`)},
	{"opacity", regexp.MustCompile(`^opacity-(?:\d{1,2}|100)$`)},
	{"filter", regexp.MustCompile(`^(?:blur(?:-(?:sm|md|lg|xl|2xl|3xl|none))?|brightness-\d{1,3}|contrast-\d{1,3}|grayscale|invert|sepia)$`)},
	{"border-width", regexp.MustCompile(`^border(?:-(?:t|r|b|l|x|y))?(?:-(?:\d+|none))?$`)},

	// Transitions and transforms: transition, duration-150, rotate-45,
	// scale-95, translate-x-4
	{"transition", regexp.MustCompile(`^(?:transition(?:-(?:none|all|colors|opacity|shadow|transform))?|duration-\d+|delay-\d+|ease-(?:linear|in|out|in-out))$`)},
	{"transform", regexp.MustCompile(`^(?:transform|transform-none|rotate-\d+|scale-(?:\d+|x-\d+|y-\d+)|translate-(?:x|y)-(?:\d+(?:\.\d+)?|px|full)|skew-(?:x|y)-\d+|origin-(?:center|top|bottom|left|right|top-left|top-right|bottom-left|bottom-right))$`)},

	// Interactivity: cursor-pointer, select-none, pointer-events-none
	{"cursor", regexp.MustCompile(`^cursor-(?:auto|default|pointer|wait|text|move|help|not-allowed|grab|grabbing)$`)},
	{"select", regexp.MustCompile(`^select-(?:none|text|all|auto)$`)},
	{"pointer-events", regexp.MustCompile(`^pointer-events-(?:none|auto)$`)},
	{"resize", regexp.MustCompile(`^resize(?:-(?:x|y|none))?$`)},

	// Overflow and object fit
	{"overflow", regexp.MustCompile(`^overflow(?:-(?:x|y))?-(?:auto|hidden|visible|scroll|clip)$`)},
	{"object", regexp.MustCompile(`^object-(?:contain|cover|fill|none|scale-down|center|top|bottom|left|right)$`)},

	// Accessibility
	{"screen-reader", regexp.MustCompile(`^(?:sr-only|not-sr-only)$`)},

	// Tables
	{"table", regexp.MustCompile(`^(?:table-(?:auto|fixed)|border-(?:collapse|separate)|caption-(?:top|bottom))$`)},

	// Bracketed arbitrary values: w-[32rem], bg-[#1d4ed8], top-[117px]
	{"arbitrary-value", regexp.MustCompile(`^[a-z][a-z-]*-\[[^\]\s]+\]$`)},
}

// matchesBuiltinUtility reports whether the token matches any entry of the
// builtin catalog.
func matchesBuiltinUtility(token string) bool {
	for _, p := range builtinUtilities {
		if p.re.MatchString(token) {
			return true
		}
	}
	return false
}
