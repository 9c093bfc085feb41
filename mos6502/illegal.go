package mos6502

// ill is the exec function for every undocumented opcode: the
// NOP/skb/ign family, the LAX/SAX/DCP/ISB/SLO/RLA/SRE/RRA slots, and
// every byte the table leaves undefined (a one-byte IMP no-op).
// spec.md is explicit that illegal-opcode *side effects* are out of
// scope; all that matters is that the program counter advances by
// exactly the bytes the opcode's addressing mode would have consumed,
// so ROMs that contain them stay in sync with a real 6502. Reading the
// resolved operand (when the mode isn't ACC/IMP) mirrors the bus
// access real silicon performs, without acting on the value.
func (c *CPU) ill(mode uint8) {
	if mode != ACC && mode != IMP {
		c.operand(mode)
	}
}
