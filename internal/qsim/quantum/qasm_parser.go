package quantum

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
)

// Program is a parsed OpenQASM 2.0 circuit
type Program struct {
	NumQubits    int
	NumClbits    int
	Instructions []Instruction
	// Measurements maps qubit index to classical bit index
	Measurements map[int]int
}

type register struct {
	offset int
	size   int
}

var (
	versionRe = regexp.MustCompile(`^OPENQASM\s+([0-9.]+)$`)
	regDeclRe = regexp.MustCompile(`^(qreg|creg)\s+([A-Za-z_]\w*)\s*\[\s*(\d+)\s*\]$`)
	measureRe = regexp.MustCompile(`^measure\s+(.+?)\s*->\s*(.+)$`)
	gateRe    = regexp.MustCompile(`^([A-Za-z_]\w*)\s*(?:\((.*)\))?\s+(.+)$`)
	argRe     = regexp.MustCompile(`^([A-Za-z_]\w*)\s*(?:\[\s*(\d+)\s*\])?$`)
)

// MaxProgramQubits bounds the qubits and classical bits a program may
// declare. Registers past it are rejected before any operand is expanded.
const MaxProgramQubits = 12

// catalogNames maps qelib1.inc gate names to catalog names
var catalogNames = map[string]string{
	"x":  "X",
	"y":  "Y",
	"z":  "Z",
	"h":  "H",
	"id": "I",
	"rx": "RX",
	"ry": "RY",
	"rz": "RZ",
	"cx": "CNOT",
	"CX": "CNOT",
	"cz": "CZ",
	"dd": "DDSequence",
}

// ParseQASM parses the OpenQASM 2.0 subset covered by the gate catalog.
// Classical control, resets and custom gate definitions are rejected.
func ParseQASM(src string) (*Program, error) {
	p := &parser{
		prog:  &Program{Measurements: make(map[int]int)},
		qregs: make(map[string]register),
		cregs: make(map[string]register),
	}

	for n, stmt := range splitStatements(src) {
		if err := p.statement(stmt); err != nil {
			return nil, fmt.Errorf("statement %d %q: %w", n+1, stmt, err)
		}
	}

	if p.prog.NumQubits == 0 {
		return nil, fmt.Errorf("no qreg declared")
	}

	return p.prog, nil
}

type parser struct {
	prog  *Program
	qregs map[string]register
	cregs map[string]register
}

func (p *parser) statement(stmt string) error {
	switch {
	case strings.HasPrefix(stmt, "OPENQASM"):
		m := versionRe.FindStringSubmatch(stmt)
		if m == nil || !strings.HasPrefix(m[1], "2") {
			return fmt.Errorf("unsupported version")
		}
		return nil
	case strings.HasPrefix(stmt, "include"), strings.HasPrefix(stmt, "barrier"):
		return nil
	case strings.HasPrefix(stmt, "if(") || strings.HasPrefix(stmt, "if "):
		return fmt.Errorf("classical control is not supported")
	case strings.HasPrefix(stmt, "reset"):
		return fmt.Errorf("reset is not supported")
	case strings.HasPrefix(stmt, "gate ") || strings.HasPrefix(stmt, "opaque "):
		return fmt.Errorf("custom gate definitions are not supported")
	}

	if m := regDeclRe.FindStringSubmatch(stmt); m != nil {
		if _, dup := p.qregs[m[2]]; dup {
			return fmt.Errorf("register %q already declared", m[2])
		}
		if _, dup := p.cregs[m[2]]; dup {
			return fmt.Errorf("register %q already declared", m[2])
		}
		size, err := strconv.Atoi(m[3])
		if err != nil || size < 1 {
			return fmt.Errorf("bad register size %q", m[3])
		}
		total := p.prog.NumQubits
		if m[1] == "creg" {
			total = p.prog.NumClbits
		}
		if size > MaxProgramQubits-total {
			return fmt.Errorf("%s %s[%d] exceeds %d bits", m[1], m[2], size, MaxProgramQubits)
		}
		if m[1] == "qreg" {
			p.qregs[m[2]] = register{offset: p.prog.NumQubits, size: size}
			p.prog.NumQubits += size
		} else {
			p.cregs[m[2]] = register{offset: p.prog.NumClbits, size: size}
			p.prog.NumClbits += size
		}
		return nil
	}

	if m := measureRe.FindStringSubmatch(stmt); m != nil {
		qs, err := p.operand(m[1], p.qregs)
		if err != nil {
			return err
		}
		cs, err := p.operand(m[2], p.cregs)
		if err != nil {
			return err
		}
		if len(qs) != len(cs) {
			return fmt.Errorf("measure operands differ in size")
		}
		for i := range qs {
			p.prog.Measurements[qs[i]] = cs[i]
		}
		return nil
	}

	m := gateRe.FindStringSubmatch(stmt)
	if m == nil {
		return fmt.Errorf("unrecognised statement")
	}

	name, ok := catalogNames[m[1]]
	if !ok {
		return fmt.Errorf("unsupported gate %q", m[1])
	}

	params, err := evalParams(m[2])
	if err != nil {
		return err
	}

	args := strings.Split(m[3], ",")
	operands := make([][]int, len(args))
	for i, a := range args {
		if operands[i], err = p.operand(a, p.qregs); err != nil {
			return err
		}
	}

	// a bare register operand broadcasts a single-wire gate over the register
	if len(operands) == 1 {
		for _, w := range operands[0] {
			p.prog.Instructions = append(p.prog.Instructions, Instruction{
				Name:   name,
				Wires:  []int{w},
				Params: params,
			})
		}
		return nil
	}

	wires := make([]int, len(operands))
	for i, op := range operands {
		if len(op) != 1 {
			return fmt.Errorf("register broadcast is only supported for single-qubit gates")
		}
		wires[i] = op[0]
	}
	p.prog.Instructions = append(p.prog.Instructions, Instruction{
		Name:   name,
		Wires:  wires,
		Params: params,
	})
	return nil
}

// operand resolves "q[2]" to a single global index, or "q" to the whole register
func (p *parser) operand(arg string, regs map[string]register) ([]int, error) {
	m := argRe.FindStringSubmatch(strings.TrimSpace(arg))
	if m == nil {
		return nil, fmt.Errorf("bad operand %q", arg)
	}

	reg, ok := regs[m[1]]
	if !ok {
		return nil, fmt.Errorf("undeclared register %q", m[1])
	}

	if m[2] == "" {
		idx := make([]int, reg.size)
		for i := range idx {
			idx[i] = reg.offset + i
		}
		return idx, nil
	}

	i, err := strconv.Atoi(m[2])
	if err != nil || i >= reg.size {
		return nil, fmt.Errorf("index %d out of range for %s[%d]", i, m[1], reg.size)
	}
	return []int{reg.offset + i}, nil
}

// evalParams evaluates a comma separated list of angle expressions such as
// "pi/2, -3*pi/4"
func evalParams(list string) ([]float64, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil, nil
	}

	env := map[string]any{"pi": math.Pi}
	parts := strings.Split(list, ",")
	params := make([]float64, len(parts))
	for i, part := range parts {
		program, err := expr.Compile(strings.TrimSpace(part), expr.Env(env), expr.AsFloat64())
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", part, err)
		}
		out, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", part, err)
		}
		params[i] = out.(float64)
	}

	return params, nil
}

// splitStatements strips // comments and splits on semicolons
func splitStatements(src string) []string {
	var cleaned strings.Builder
	for _, line := range strings.Split(src, "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		cleaned.WriteString(line)
		cleaned.WriteByte('\n')
	}

	var stmts []string
	for _, s := range strings.Split(cleaned.String(), ";") {
		s = strings.Join(strings.Fields(s), " ")
		if s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
