package exam

// Role resolution. Role is purely a function of how many container ancestors
// a node has (the node itself included) and must be recomputed after every
// structural mutation - both the batch transformation (top-down) and the
// interactive editor (bottom-up) go through RoleAt so the two sides cannot
// disagree.

// Role is the structural classification of a container.
type Role int

const (
	RoleNone Role = iota
	RoleQuestion
	RolePart
	RoleSubpart
	RoleSubsubpart
)

// MaxDepth is the deepest distinct nesting level. Containers nested deeper
// all resolve to RoleSubsubpart.
const MaxDepth = 4

// RoleAt returns the role of a container whose ancestor chain holds depth
// containers (itself included). Depth beyond MaxDepth clamps to subsubpart,
// depth below one resolves to no role at all.
func RoleAt(depth int) Role {
	switch {
	case depth < 1:
		return RoleNone
	case depth >= MaxDepth:
		return RoleSubsubpart
	default:
		return Role(depth)
	}
}

func (r Role) String() string {
	switch r {
	case RoleQuestion:
		return "question"
	case RolePart:
		return "part"
	case RoleSubpart:
		return "subpart"
	case RoleSubsubpart:
		return "subsubpart"
	default:
		return "none"
	}
}

// Command returns the LaTeX command name for the role, without the leading
// backslash.
func (r Role) Command() string {
	return r.String()
}

// TitledCommand returns the command variant carrying a title argument. Only
// questions have one - exam document classes take no title argument on
// part/subpart commands, so below the question level the plain command is
// returned and the title stays informational.
func (r Role) TitledCommand() string {
	if r == RoleQuestion {
		return "titledquestion"
	}
	return r.Command()
}

// EnvName returns the grouping environment name wrapping runs of containers
// of this role.
func (r Role) EnvName() string {
	switch r {
	case RoleQuestion:
		return "questions"
	case RolePart:
		return "parts"
	case RoleSubpart:
		return "subparts"
	case RoleSubsubpart:
		return "subsubparts"
	default:
		return ""
	}
}
