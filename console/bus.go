// Package console wires the CPU, PPU, cartridge mapper, work RAM, and
// controller ports together into the shared bus the whole machine runs
// on: address decode, device routing, DMA, and the master clock.
package console

import (
	"math"

	"dendy/mappers"
	"dendy/mos6502"
	"dendy/ppu"
)

const (
	NES_BASE_MEMORY = 0x800 // 2KB built in RAM

	MAX_ADDRESS          = math.MaxUint16
	MAX_NES_BASE_RAM     = 0x1FFF
	MAX_PPU_REG_MIRRORED = 0x3FFF
	MAX_IO_REG           = 0x4020
	MAX_SRAM             = 0x6000
)

const (
	OAMDMA      = 0x4014
	JOYPAD1     = 0x4016
	JOYPAD2     = 0x4017
	APU_FIRST   = 0x4000
	APU_LAST    = 0x4015
)

// Color mirrors ppu.Color so callers of FrameBuffer don't need to
// import the ppu package directly.
type Color = ppu.Color

// FrameBuffer is one completed 256x240 RGB picture.
type FrameBuffer = ppu.Frame

// dma tracks an in-flight OAM DMA transfer. A trigger write to 0x4014
// stalls the CPU for 513 or 514 master-rate CPU cycles: one dummy
// cycle (two if the CPU's cycle counter was odd when triggered), then
// 256 read/write cycle pairs copying page<<8+i into OAM.
type dma struct {
	active        bool
	page          uint8
	idx           uint16
	latch         uint8
	awaitingWrite bool
	dummyLeft     int
}

// Bus is the NES shared bus: the spec's "core". It owns every device
// and exposes the host-facing surface (TickMaster, FrameBuffer,
// SetController) that a display/input shell drives.
type Bus struct {
	cpu    *mos6502.CPU
	ppu    *ppu.PPU
	mapper mappers.Mapper
	ram    []uint8

	pad1, pad2 controller

	dma       dma
	cpuCycles uint64
	master    uint64
}

// New constructs a Bus wired to mapper, with the CPU and PPU created
// and referencing it as their respective Bus interfaces. Callers must
// call Reset before the first TickMaster.
func New(m mappers.Mapper) *Bus {
	b := &Bus{mapper: m, ram: make([]uint8, NES_BASE_MEMORY)}
	b.cpu = mos6502.New(b)
	b.ppu = ppu.New(b)
	return b
}

// Reset brings the CPU and PPU to their documented power-up state and
// clears any in-flight DMA. Work RAM, CHR, and the palette are left
// untouched, matching hardware's indeterminate-RAM-on-power-up model.
func (b *Bus) Reset() {
	b.cpu.Reset()
	b.ppu.Reset()
	b.dma = dma{}
	b.cpuCycles = 0
	b.master = 0
}

// FrameBuffer returns the most recently completed frame. Valid once
// FrameReady would have pulsed on the PPU (callers normally drive
// TickMaster until enough frames have passed rather than poll this
// directly; the host shell owns that decision).
func (b *Bus) FrameBuffer() *FrameBuffer {
	return b.ppu.FrameBuffer()
}

// FrameReady reports (and consumes) whether the PPU completed a frame
// since the last call.
func (b *Bus) FrameReady() bool {
	return b.ppu.FrameReady()
}

// SetController updates the live button snapshot for port 0 or 1,
// sampled on the next 0x4016/0x4017 strobe write.
func (b *Bus) SetController(port int, mask uint8) {
	switch port {
	case 0:
		b.pad1.buttons = mask
	case 1:
		b.pad2.buttons = mask
	}
}

// MirroringMode satisfies ppu.Bus, delegating to the cartridge mapper.
func (b *Bus) MirroringMode() uint8 {
	return b.mapper.MirroringMode()
}

// ChrRead satisfies ppu.Bus, delegating pattern-table reads to the
// cartridge mapper.
func (b *Bus) ChrRead(addr uint16) uint8 {
	return b.mapper.ChrRead(addr)
}

// ChrWrite satisfies ppu.Bus, delegating pattern-table writes (CHR-RAM
// boards only) to the cartridge mapper.
func (b *Bus) ChrWrite(addr uint16, val uint8) {
	b.mapper.ChrWrite(addr, val)
}

// Read satisfies mos6502.Bus: the CPU-side 16-bit address map.
// https://www.nesdev.org/wiki/CPU_memory_map
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= MAX_NES_BASE_RAM:
		return b.ram[addr&0x07FF]
	case addr <= MAX_PPU_REG_MIRRORED:
		return b.ppu.ReadReg(0x2000 + (addr & 0x0007))
	case addr == JOYPAD1:
		return b.pad1.read()
	case addr == JOYPAD2:
		return b.pad2.read()
	case addr < MAX_IO_REG:
		return 0 // APU register stub
	case addr <= MAX_SRAM:
		return 0
	case addr <= MAX_ADDRESS:
		return b.mapper.PrgRead(addr)
	}
	panic("should never happen") // hah, prod crashes await!
}

// Write satisfies mos6502.Bus: the CPU-side 16-bit address map.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= MAX_NES_BASE_RAM:
		b.ram[addr&0x07FF] = val
	case addr <= MAX_PPU_REG_MIRRORED:
		b.ppu.WriteReg(0x2000+(addr&0x0007), val)
	case addr == OAMDMA:
		b.startDMA(val)
	case addr == JOYPAD1:
		b.pad1.write(val)
	case addr == JOYPAD2:
		b.pad2.write(val)
	case addr < MAX_IO_REG:
		// APU register stub: writes accepted, discarded.
	case addr <= MAX_SRAM:
		// no cartridge SRAM support
	case addr <= MAX_ADDRESS:
		b.mapper.PrgWrite(addr, val)
	}
}

func (b *Bus) startDMA(page uint8) {
	b.dma = dma{active: true, page: page, dummyLeft: 1}
	if b.cpuCycles%2 == 1 {
		b.dma.dummyLeft = 2
	}
}

// stepDMA advances one in-flight DMA transfer by one CPU-rate cycle.
func (b *Bus) stepDMA() {
	if b.dma.dummyLeft > 0 {
		b.dma.dummyLeft--
		return
	}
	if !b.dma.awaitingWrite {
		b.dma.latch = b.Read(uint16(b.dma.page)<<8 | b.dma.idx)
		b.dma.awaitingWrite = true
		return
	}
	b.ppu.WriteOAM(b.dma.latch)
	b.dma.awaitingWrite = false
	b.dma.idx++
	if b.dma.idx == 256 {
		b.dma.active = false
	}
}

// TickMaster advances the master clock by one tick: the PPU ticks
// every master tick; the CPU (or an in-flight DMA transfer, which
// stalls it) ticks every third.
func (b *Bus) TickMaster() {
	b.ppu.Tick()

	if b.master%3 == 0 {
		b.cpuCycles++
		if b.dma.active {
			b.stepDMA()
		} else {
			if b.ppu.TakeNMI() {
				b.cpu.NMI()
			}
			b.cpu.Tick()
		}
	}

	b.master++
}
