package cpu

// instr builds a dispatch table entry that resolves the given addressing
// mode and then executes the given opcode body against it.
func instr(op func(*CPU, addrMode), mode addrMode) func(*CPU) {
	return func(c *CPU) {
		c.fetchOperand(mode)
		op(c, mode)
	}
}

// dispatchTable is indexed by opcode byte. It covers all 151 documented
// instructions plus the commonly emulated unofficial opcodes; the
// remaining unofficial slots (ANC/ALR/ARR/XAA/AXS/AHX/TAS/LAS/SHX/SHY and
// the JAM/KIL family) are left as operand-absorbing no-ops.
var dispatchTable = [256]func(*CPU){
	0x00: instr((*CPU).opBRK, modeImplied),
	0x01: instr((*CPU).opORA, modeIndirectX),
	0x02: instr((*CPU).opUnstable, modeImplied),
	0x03: instr((*CPU).opSLO, modeIndirectX),
	0x04: instr((*CPU).opNOP, modeZeroPage),
	0x05: instr((*CPU).opORA, modeZeroPage),
	0x06: instr((*CPU).opASL, modeZeroPage),
	0x07: instr((*CPU).opSLO, modeZeroPage),
	0x08: instr((*CPU).opPHP, modeImplied),
	0x09: instr((*CPU).opORA, modeImmediate),
	0x0A: instr((*CPU).opASL, modeAccumulator),
	0x0B: instr((*CPU).opUnstable, modeImmediate),
	0x0C: instr((*CPU).opNOP, modeAbsolute),
	0x0D: instr((*CPU).opORA, modeAbsolute),
	0x0E: instr((*CPU).opASL, modeAbsolute),
	0x0F: instr((*CPU).opSLO, modeAbsolute),

	0x10: instr((*CPU).opBPL, modeRelative),
	0x11: instr((*CPU).opORA, modeIndirectY),
	0x12: instr((*CPU).opUnstable, modeImplied),
	0x13: instr((*CPU).opSLO, modeIndirectYStore),
	0x14: instr((*CPU).opNOP, modeZeroPageX),
	0x15: instr((*CPU).opORA, modeZeroPageX),
	0x16: instr((*CPU).opASL, modeZeroPageX),
	0x17: instr((*CPU).opSLO, modeZeroPageX),
	0x18: instr((*CPU).opCLC, modeImplied),
	0x19: instr((*CPU).opORA, modeAbsoluteY),
	0x1A: instr((*CPU).opNOP, modeImplied),
	0x1B: instr((*CPU).opSLO, modeAbsoluteYStore),
	0x1C: instr((*CPU).opNOP, modeAbsoluteX),
	0x1D: instr((*CPU).opORA, modeAbsoluteX),
	0x1E: instr((*CPU).opASL, modeAbsoluteXStore),
	0x1F: instr((*CPU).opSLO, modeAbsoluteXStore),

	0x20: instr((*CPU).opJSR, modeAbsolute),
	0x21: instr((*CPU).opAND, modeIndirectX),
	0x22: instr((*CPU).opUnstable, modeImplied),
	0x23: instr((*CPU).opRLA, modeIndirectX),
	0x24: instr((*CPU).opBIT, modeZeroPage),
	0x25: instr((*CPU).opAND, modeZeroPage),
	0x26: instr((*CPU).opROL, modeZeroPage),
	0x27: instr((*CPU).opRLA, modeZeroPage),
	0x28: instr((*CPU).opPLP, modeImplied),
	0x29: instr((*CPU).opAND, modeImmediate),
	0x2A: instr((*CPU).opROL, modeAccumulator),
	0x2B: instr((*CPU).opUnstable, modeImmediate),
	0x2C: instr((*CPU).opBIT, modeAbsolute),
	0x2D: instr((*CPU).opAND, modeAbsolute),
	0x2E: instr((*CPU).opROL, modeAbsolute),
	0x2F: instr((*CPU).opRLA, modeAbsolute),

	0x30: instr((*CPU).opBMI, modeRelative),
	0x31: instr((*CPU).opAND, modeIndirectY),
	0x32: instr((*CPU).opUnstable, modeImplied),
	0x33: instr((*CPU).opRLA, modeIndirectYStore),
	0x34: instr((*CPU).opNOP, modeZeroPageX),
	0x35: instr((*CPU).opAND, modeZeroPageX),
	0x36: instr((*CPU).opROL, modeZeroPageX),
	0x37: instr((*CPU).opRLA, modeZeroPageX),
	0x38: instr((*CPU).opSEC, modeImplied),
	0x39: instr((*CPU).opAND, modeAbsoluteY),
	0x3A: instr((*CPU).opNOP, modeImplied),
	0x3B: instr((*CPU).opRLA, modeAbsoluteYStore),
	0x3C: instr((*CPU).opNOP, modeAbsoluteX),
	0x3D: instr((*CPU).opAND, modeAbsoluteX),
	0x3E: instr((*CPU).opROL, modeAbsoluteXStore),
	0x3F: instr((*CPU).opRLA, modeAbsoluteXStore),

	0x40: instr((*CPU).opRTI, modeImplied),
	0x41: instr((*CPU).opEOR, modeIndirectX),
	0x42: instr((*CPU).opUnstable, modeImplied),
	0x43: instr((*CPU).opSRE, modeIndirectX),
	0x44: instr((*CPU).opNOP, modeZeroPage),
	0x45: instr((*CPU).opEOR, modeZeroPage),
	0x46: instr((*CPU).opLSR, modeZeroPage),
	0x47: instr((*CPU).opSRE, modeZeroPage),
	0x48: instr((*CPU).opPHA, modeImplied),
	0x49: instr((*CPU).opEOR, modeImmediate),
	0x4A: instr((*CPU).opLSR, modeAccumulator),
	0x4B: instr((*CPU).opUnstable, modeImmediate),
	0x4C: instr((*CPU).opJMP, modeAbsolute),
	0x4D: instr((*CPU).opEOR, modeAbsolute),
	0x4E: instr((*CPU).opLSR, modeAbsolute),
	0x4F: instr((*CPU).opSRE, modeAbsolute),

	0x50: instr((*CPU).opBVC, modeRelative),
	0x51: instr((*CPU).opEOR, modeIndirectY),
	0x52: instr((*CPU).opUnstable, modeImplied),
	0x53: instr((*CPU).opSRE, modeIndirectYStore),
	0x54: instr((*CPU).opNOP, modeZeroPageX),
	0x55: instr((*CPU).opEOR, modeZeroPageX),
	0x56: instr((*CPU).opLSR, modeZeroPageX),
	0x57: instr((*CPU).opSRE, modeZeroPageX),
	0x58: instr((*CPU).opCLI, modeImplied),
	0x59: instr((*CPU).opEOR, modeAbsoluteY),
	0x5A: instr((*CPU).opNOP, modeImplied),
	0x5B: instr((*CPU).opSRE, modeAbsoluteYStore),
	0x5C: instr((*CPU).opNOP, modeAbsoluteX),
	0x5D: instr((*CPU).opEOR, modeAbsoluteX),
	0x5E: instr((*CPU).opLSR, modeAbsoluteXStore),
	0x5F: instr((*CPU).opSRE, modeAbsoluteXStore),

	0x60: instr((*CPU).opRTS, modeImplied),
	0x61: instr((*CPU).opADC, modeIndirectX),
	0x62: instr((*CPU).opUnstable, modeImplied),
	0x63: instr((*CPU).opRRA, modeIndirectX),
	0x64: instr((*CPU).opNOP, modeZeroPage),
	0x65: instr((*CPU).opADC, modeZeroPage),
	0x66: instr((*CPU).opROR, modeZeroPage),
	0x67: instr((*CPU).opRRA, modeZeroPage),
	0x68: instr((*CPU).opPLA, modeImplied),
	0x69: instr((*CPU).opADC, modeImmediate),
	0x6A: instr((*CPU).opROR, modeAccumulator),
	0x6B: instr((*CPU).opUnstable, modeImmediate),
	0x6C: instr((*CPU).opJMP, modeIndirect),
	0x6D: instr((*CPU).opADC, modeAbsolute),
	0x6E: instr((*CPU).opROR, modeAbsolute),
	0x6F: instr((*CPU).opRRA, modeAbsolute),

	0x70: instr((*CPU).opBVS, modeRelative),
	0x71: instr((*CPU).opADC, modeIndirectY),
	0x72: instr((*CPU).opUnstable, modeImplied),
	0x73: instr((*CPU).opRRA, modeIndirectYStore),
	0x74: instr((*CPU).opNOP, modeZeroPageX),
	0x75: instr((*CPU).opADC, modeZeroPageX),
	0x76: instr((*CPU).opROR, modeZeroPageX),
	0x77: instr((*CPU).opRRA, modeZeroPageX),
	0x78: instr((*CPU).opSEI, modeImplied),
	0x79: instr((*CPU).opADC, modeAbsoluteY),
	0x7A: instr((*CPU).opNOP, modeImplied),
	0x7B: instr((*CPU).opRRA, modeAbsoluteYStore),
	0x7C: instr((*CPU).opNOP, modeAbsoluteX),
	0x7D: instr((*CPU).opADC, modeAbsoluteX),
	0x7E: instr((*CPU).opROR, modeAbsoluteXStore),
	0x7F: instr((*CPU).opRRA, modeAbsoluteXStore),

	0x80: instr((*CPU).opNOP, modeImmediate),
	0x81: instr((*CPU).opSTA, modeIndirectX),
	0x82: instr((*CPU).opNOP, modeImmediate),
	0x83: instr((*CPU).opSAX, modeIndirectX),
	0x84: instr((*CPU).opSTY, modeZeroPage),
	0x85: instr((*CPU).opSTA, modeZeroPage),
	0x86: instr((*CPU).opSTX, modeZeroPage),
	0x87: instr((*CPU).opSAX, modeZeroPage),
	0x88: instr((*CPU).opDEY, modeImplied),
	0x89: instr((*CPU).opNOP, modeImmediate),
	0x8A: instr((*CPU).opTXA, modeImplied),
	0x8B: instr((*CPU).opUnstable, modeImmediate),
	0x8C: instr((*CPU).opSTY, modeAbsolute),
	0x8D: instr((*CPU).opSTA, modeAbsolute),
	0x8E: instr((*CPU).opSTX, modeAbsolute),
	0x8F: instr((*CPU).opSAX, modeAbsolute),

	0x90: instr((*CPU).opBCC, modeRelative),
	0x91: instr((*CPU).opSTA, modeIndirectYStore),
	0x92: instr((*CPU).opUnstable, modeImplied),
	0x93: instr((*CPU).opUnstable, modeIndirectYStore),
	0x94: instr((*CPU).opSTY, modeZeroPageX),
	0x95: instr((*CPU).opSTA, modeZeroPageX),
	0x96: instr((*CPU).opSTX, modeZeroPageY),
	0x97: instr((*CPU).opSAX, modeZeroPageY),
	0x98: instr((*CPU).opTYA, modeImplied),
	0x99: instr((*CPU).opSTA, modeAbsoluteYStore),
	0x9A: instr((*CPU).opTXS, modeImplied),
	0x9B: instr((*CPU).opUnstable, modeAbsoluteYStore),
	0x9C: instr((*CPU).opUnstable, modeAbsoluteXStore),
	0x9D: instr((*CPU).opSTA, modeAbsoluteXStore),
	0x9E: instr((*CPU).opUnstable, modeAbsoluteYStore),
	0x9F: instr((*CPU).opUnstable, modeAbsoluteYStore),

	0xA0: instr((*CPU).opLDY, modeImmediate),
	0xA1: instr((*CPU).opLDA, modeIndirectX),
	0xA2: instr((*CPU).opLDX, modeImmediate),
	0xA3: instr((*CPU).opLAX, modeIndirectX),
	0xA4: instr((*CPU).opLDY, modeZeroPage),
	0xA5: instr((*CPU).opLDA, modeZeroPage),
	0xA6: instr((*CPU).opLDX, modeZeroPage),
	0xA7: instr((*CPU).opLAX, modeZeroPage),
	0xA8: instr((*CPU).opTAY, modeImplied),
	0xA9: instr((*CPU).opLDA, modeImmediate),
	0xAA: instr((*CPU).opTAX, modeImplied),
	0xAB: instr((*CPU).opUnstable, modeImmediate),
	0xAC: instr((*CPU).opLDY, modeAbsolute),
	0xAD: instr((*CPU).opLDA, modeAbsolute),
	0xAE: instr((*CPU).opLDX, modeAbsolute),
	0xAF: instr((*CPU).opLAX, modeAbsolute),

	0xB0: instr((*CPU).opBCS, modeRelative),
	0xB1: instr((*CPU).opLDA, modeIndirectY),
	0xB2: instr((*CPU).opUnstable, modeImplied),
	0xB3: instr((*CPU).opLAX, modeIndirectY),
	0xB4: instr((*CPU).opLDY, modeZeroPageX),
	0xB5: instr((*CPU).opLDA, modeZeroPageX),
	0xB6: instr((*CPU).opLDX, modeZeroPageY),
	0xB7: instr((*CPU).opLAX, modeZeroPageY),
	0xB8: instr((*CPU).opCLV, modeImplied),
	0xB9: instr((*CPU).opLDA, modeAbsoluteY),
	0xBA: instr((*CPU).opTSX, modeImplied),
	0xBB: instr((*CPU).opUnstable, modeAbsoluteY),
	0xBC: instr((*CPU).opLDY, modeAbsoluteX),
	0xBD: instr((*CPU).opLDA, modeAbsoluteX),
	0xBE: instr((*CPU).opLDX, modeAbsoluteY),
	0xBF: instr((*CPU).opLAX, modeAbsoluteY),

	0xC0: instr((*CPU).opCPY, modeImmediate),
	0xC1: instr((*CPU).opCMP, modeIndirectX),
	0xC2: instr((*CPU).opNOP, modeImmediate),
	0xC3: instr((*CPU).opDCP, modeIndirectX),
	0xC4: instr((*CPU).opCPY, modeZeroPage),
	0xC5: instr((*CPU).opCMP, modeZeroPage),
	0xC6: instr((*CPU).opDEC, modeZeroPage),
	0xC7: instr((*CPU).opDCP, modeZeroPage),
	0xC8: instr((*CPU).opINY, modeImplied),
	0xC9: instr((*CPU).opCMP, modeImmediate),
	0xCA: instr((*CPU).opDEX, modeImplied),
	0xCB: instr((*CPU).opUnstable, modeImmediate),
	0xCC: instr((*CPU).opCPY, modeAbsolute),
	0xCD: instr((*CPU).opCMP, modeAbsolute),
	0xCE: instr((*CPU).opDEC, modeAbsolute),
	0xCF: instr((*CPU).opDCP, modeAbsolute),

	0xD0: instr((*CPU).opBNE, modeRelative),
	0xD1: instr((*CPU).opCMP, modeIndirectY),
	0xD2: instr((*CPU).opUnstable, modeImplied),
	0xD3: instr((*CPU).opDCP, modeIndirectYStore),
	0xD4: instr((*CPU).opNOP, modeZeroPageX),
	0xD5: instr((*CPU).opCMP, modeZeroPageX),
	0xD6: instr((*CPU).opDEC, modeZeroPageX),
	0xD7: instr((*CPU).opDCP, modeZeroPageX),
	0xD8: instr((*CPU).opCLD, modeImplied),
	0xD9: instr((*CPU).opCMP, modeAbsoluteY),
	0xDA: instr((*CPU).opNOP, modeImplied),
	0xDB: instr((*CPU).opDCP, modeAbsoluteYStore),
	0xDC: instr((*CPU).opNOP, modeAbsoluteX),
	0xDD: instr((*CPU).opCMP, modeAbsoluteX),
	0xDE: instr((*CPU).opDEC, modeAbsoluteXStore),
	0xDF: instr((*CPU).opDCP, modeAbsoluteXStore),

	0xE0: instr((*CPU).opCPX, modeImmediate),
	0xE1: instr((*CPU).opSBC, modeIndirectX),
	0xE2: instr((*CPU).opNOP, modeImmediate),
	0xE3: instr((*CPU).opISC, modeIndirectX),
	0xE4: instr((*CPU).opCPX, modeZeroPage),
	0xE5: instr((*CPU).opSBC, modeZeroPage),
	0xE6: instr((*CPU).opINC, modeZeroPage),
	0xE7: instr((*CPU).opISC, modeZeroPage),
	0xE8: instr((*CPU).opINX, modeImplied),
	0xE9: instr((*CPU).opSBC, modeImmediate),
	0xEA: instr((*CPU).opNOP, modeImplied),
	0xEB: instr((*CPU).opSBC, modeImmediate),
	0xEC: instr((*CPU).opCPX, modeAbsolute),
	0xED: instr((*CPU).opSBC, modeAbsolute),
	0xEE: instr((*CPU).opINC, modeAbsolute),
	0xEF: instr((*CPU).opISC, modeAbsolute),

	0xF0: instr((*CPU).opBEQ, modeRelative),
	0xF1: instr((*CPU).opSBC, modeIndirectY),
	0xF2: instr((*CPU).opUnstable, modeImplied),
	0xF3: instr((*CPU).opISC, modeIndirectYStore),
	0xF4: instr((*CPU).opNOP, modeZeroPageX),
	0xF5: instr((*CPU).opSBC, modeZeroPageX),
	0xF6: instr((*CPU).opINC, modeZeroPageX),
	0xF7: instr((*CPU).opISC, modeZeroPageX),
	0xF8: instr((*CPU).opSED, modeImplied),
	0xF9: instr((*CPU).opSBC, modeAbsoluteY),
	0xFA: instr((*CPU).opNOP, modeImplied),
	0xFB: instr((*CPU).opISC, modeAbsoluteYStore),
	0xFC: instr((*CPU).opNOP, modeAbsoluteX),
	0xFD: instr((*CPU).opSBC, modeAbsoluteX),
	0xFE: instr((*CPU).opINC, modeAbsoluteXStore),
	0xFF: instr((*CPU).opISC, modeAbsoluteXStore),
}
