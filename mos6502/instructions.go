package mos6502

import "math/bits"

// Each instruction method receives the addressing mode it was
// dispatched under so ACC-mode shift/rotate instructions can operate
// on the accumulator instead of memory. The effective address (for
// non-ACC/IMP modes) is already resolved into c.addr.

func (c *CPU) adc(mode uint8) {
	c.addWithCarry(c.operand(mode))
}

func (c *CPU) and(mode uint8) {
	c.A &= c.operand(mode)
	c.setZN(c.A)
}

func (c *CPU) asl(mode uint8) {
	old := c.operand(mode)
	res := old << 1
	c.storeOperand(mode, res)
	c.setFlag(FlagCarry, old&0x80 != 0)
	c.setZN(res)
}

func (c *CPU) bcc(mode uint8) { c.branch(!c.flag(FlagCarry)) }
func (c *CPU) bcs(mode uint8) { c.branch(c.flag(FlagCarry)) }
func (c *CPU) beq(mode uint8) { c.branch(c.flag(FlagZero)) }

func (c *CPU) bit(mode uint8) {
	m := c.operand(mode)
	c.setFlag(FlagZero, c.A&m == 0)
	c.setFlag(FlagOverflow, m&FlagOverflow != 0)
	c.setFlag(FlagNegative, m&FlagNegative != 0)
}

func (c *CPU) bmi(mode uint8) { c.branch(c.flag(FlagNegative)) }
func (c *CPU) bne(mode uint8) { c.branch(!c.flag(FlagZero)) }
func (c *CPU) bpl(mode uint8) { c.branch(!c.flag(FlagNegative)) }

func (c *CPU) brk(mode uint8) {
	c.PC++ // BRK is treated as a 2-byte instruction; the second byte is a padding/signature byte
	c.pushAddress(c.PC)
	c.pushStack(c.Status | FlagBreak | FlagUnused)
	c.setFlag(FlagInterruptDisable, true)
	c.PC = c.read16(vecIRQ)
}

func (c *CPU) bvc(mode uint8) { c.branch(!c.flag(FlagOverflow)) }
func (c *CPU) bvs(mode uint8) { c.branch(c.flag(FlagOverflow)) }

func (c *CPU) clc(mode uint8) { c.setFlag(FlagCarry, false) }
func (c *CPU) cld(mode uint8) { c.setFlag(FlagDecimal, false) }
func (c *CPU) cli(mode uint8) { c.setFlag(FlagInterruptDisable, false) }
func (c *CPU) clv(mode uint8) { c.setFlag(FlagOverflow, false) }

func (c *CPU) compare(reg, m uint8) {
	c.setFlag(FlagCarry, reg >= m)
	c.setZN(reg - m)
}

func (c *CPU) cmp(mode uint8) { c.compare(c.A, c.operand(mode)) }
func (c *CPU) cpx(mode uint8) { c.compare(c.X, c.operand(mode)) }
func (c *CPU) cpy(mode uint8) { c.compare(c.Y, c.operand(mode)) }

func (c *CPU) dec(mode uint8) {
	v := c.operand(mode) - 1
	c.storeOperand(mode, v)
	c.setZN(v)
}

func (c *CPU) dex(mode uint8) { c.X--; c.setZN(c.X) }
func (c *CPU) dey(mode uint8) { c.Y--; c.setZN(c.Y) }

func (c *CPU) eor(mode uint8) {
	c.A ^= c.operand(mode)
	c.setZN(c.A)
}

func (c *CPU) inc(mode uint8) {
	v := c.operand(mode) + 1
	c.storeOperand(mode, v)
	c.setZN(v)
}

func (c *CPU) inx(mode uint8) { c.X++; c.setZN(c.X) }
func (c *CPU) iny(mode uint8) { c.Y++; c.setZN(c.Y) }

func (c *CPU) jmp(mode uint8) { c.PC = c.addr }

func (c *CPU) jsr(mode uint8) {
	c.pushAddress(c.PC - 1)
	c.PC = c.addr
}

func (c *CPU) lda(mode uint8) { c.A = c.operand(mode); c.setZN(c.A) }
func (c *CPU) ldx(mode uint8) { c.X = c.operand(mode); c.setZN(c.X) }
func (c *CPU) ldy(mode uint8) { c.Y = c.operand(mode); c.setZN(c.Y) }

func (c *CPU) lsr(mode uint8) {
	old := c.operand(mode)
	res := old >> 1
	c.storeOperand(mode, res)
	c.setFlag(FlagCarry, old&0x01 != 0)
	c.setZN(res)
}

func (c *CPU) nop(mode uint8) {}

func (c *CPU) ora(mode uint8) {
	c.A |= c.operand(mode)
	c.setZN(c.A)
}

func (c *CPU) pha(mode uint8) { c.pushStack(c.A) }
func (c *CPU) php(mode uint8) { c.pushStack(c.Status | FlagBreak | FlagUnused) }

func (c *CPU) pla(mode uint8) { c.A = c.popStack(); c.setZN(c.A) }
func (c *CPU) plp(mode uint8) {
	c.Status = (c.popStack() &^ FlagBreak) | FlagUnused
}

func (c *CPU) rol(mode uint8) {
	old := c.operand(mode)
	res := bits.RotateLeft8(old, 1)&^FlagCarry | (c.Status & FlagCarry)
	c.storeOperand(mode, res)
	c.setFlag(FlagCarry, old&0x80 != 0)
	c.setZN(res)
}

func (c *CPU) ror(mode uint8) {
	old := c.operand(mode)
	res := bits.RotateLeft8(old, -1)&^0x80 | ((c.Status & FlagCarry) << 7)
	c.storeOperand(mode, res)
	c.setFlag(FlagCarry, old&FlagCarry != 0)
	c.setZN(res)
}

func (c *CPU) rti(mode uint8) {
	c.Status = (c.popStack() &^ FlagBreak) | FlagUnused
	c.PC = c.popAddress()
}

func (c *CPU) rts(mode uint8) {
	c.PC = c.popAddress() + 1
}

func (c *CPU) sbc(mode uint8) {
	c.addWithCarry(^c.operand(mode))
}

func (c *CPU) sec(mode uint8) { c.setFlag(FlagCarry, true) }
func (c *CPU) sed(mode uint8) { c.setFlag(FlagDecimal, true) }
func (c *CPU) sei(mode uint8) { c.setFlag(FlagInterruptDisable, true) }

func (c *CPU) sta(mode uint8) { c.write(c.addr, c.A) }
func (c *CPU) stx(mode uint8) { c.write(c.addr, c.X) }
func (c *CPU) sty(mode uint8) { c.write(c.addr, c.Y) }

func (c *CPU) tax(mode uint8) { c.X = c.A; c.setZN(c.X) }
func (c *CPU) tay(mode uint8) { c.Y = c.A; c.setZN(c.Y) }
func (c *CPU) tsx(mode uint8) { c.X = c.SP; c.setZN(c.X) }
func (c *CPU) txa(mode uint8) { c.A = c.X; c.setZN(c.A) }
func (c *CPU) txs(mode uint8) { c.SP = c.X }
func (c *CPU) tya(mode uint8) { c.A = c.Y; c.setZN(c.A) }

// addWithCarry implements ADC; SBC calls it with the operand inverted,
// which turns the borrow-from-carry arithmetic into the same add.
func (c *CPU) addWithCarry(m uint8) {
	carry := uint16(0)
	if c.flag(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(m) + carry
	res := uint8(sum)

	c.setFlag(FlagCarry, sum&0x100 != 0)
	c.setFlag(FlagOverflow, (^(c.A^m))&(c.A^res)&0x80 != 0)
	c.A = res
	c.setZN(c.A)
}
