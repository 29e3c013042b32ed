/*
 * Copyright 2025 Adrià Giménez Pastor.
 *
 * This file is part of adriagipas/sunxifw.
 *
 * adriagipas/sunxifw is free software: you can redistribute it and/or
 * modify it under the terms of the GNU General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * adriagipas/sunxifw is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with adriagipas/sunxifw.  If not, see
 * <https://www.gnu.org/licenses/>.
 */
/*
 *  dram.go - Classificació del bloc de paràmetres de la DRAM. Cada
 *            generació de SoC guarda una estructura diferent en les
 *            mateixes 32 paraules, sense cap camp que identifique el
 *            format, així que es proven les estructures conegudes en
 *            ordre fins que una siga vàlida.
 *
 */

package egon;

import (
  "fmt"
  "io"
)


/************/
/* VARIANTS */
/************/

type _DramVariant struct {

  matches  string // Famílies de SoC amb aquesta estructura

  // Comprova si les 32 paraules són vàlides per a aquesta
  // estructura. Escriu una línia de diagnòstic per cada camp que no
  // ho és.
  validate func(file io.Writer, prefix string, param []uint32) bool

  // Imprimeix els camps de l'estructura.
  print    func(file io.Writer, prefix string, param []uint32)

}


// L'ordre importa: l'estructura de l'H6 s'ha de provar abans que la
// de l'A31, perquè el camp bits de l'H6 cau en una paraula que l'A31
// ignora i un bloc d'H6 passaria les comprovacions (més febles) de
// l'A31.
var _DRAM_VARIANTS []_DramVariant

// S'inicialitza en init per evitar un cicle d'inicialització: les
// funcions de les variants també consulten _DRAM_VARIANTS.
func init() {
  _DRAM_VARIANTS = []_DramVariant{
  _DramVariant{
    matches  : "A10/A10s/A13/A20",
    validate : dram_a10_validate,
    print    : dram_a10_print,
  },
  _DramVariant{
    matches  : "H6",
    validate : dram_h6_validate,
    print    : dram_h6_print,
  },
  _DramVariant{
    matches  : "A31/A23/A33/A83T/A64/H3",
    validate : dram_a31_validate,
    print    : dram_a31_print,
  },
  _DramVariant{
    matches  : "H616/H700/A523",
    validate : dram_h616_validate,
    print    : dram_h616_print,
  },
  }
}


/*********************/
/* FUNCIONS PRIVADES */
/*********************/

// Tria la primera variant que accepta el bloc de paràmetres. Torna
// -1 si cap l'accepta.
func classify_dram_param(

  file   io.Writer,
  prefix string,
  param  []uint32,

) int {

  for i := 0; i < len(_DRAM_VARIANTS); i++ {
    if _DRAM_VARIANTS[i].validate ( file, prefix, param ) {
      return i
    }
  }

  return -1

} // end classify_dram_param


func dram_invalid(

  file    io.Writer,
  prefix  string,
  matches string,
  field   string,
  val     uint32,

) bool {

  fmt.Fprintf ( file, "%sInvalid structure for %s: wrong %s: 0x%08X\n",
    prefix, matches, field, val )

  return false

} // end dram_invalid


func dram_valid(file io.Writer, prefix string, matches string) bool {

  fmt.Fprintf ( file, "%sParameters seem valid for %s.\n",
    prefix, matches )

  return true

} // end dram_valid


/*******/
/* A10 */
/*******/

// Estructura emprada per A10, A10s, A13 i A20.
//
//  0 baseaddr      8 zq           16 tpr5
//  1 clk           9 odt_en       17 emr1
//  2 type         10 size         18 emr2
//  3 rank_num     11 tpr0         19 emr3
//  4 chip_density 12 tpr1
//  5 io_width     13 tpr2
//  6 bus_width    14 tpr3
//  7 cas          15 tpr4

func dram_a10_validate(

  file   io.Writer,
  prefix string,
  param  []uint32,

) bool {

  matches := _DRAM_VARIANTS[0].matches

  // Adreça base, hauria de ser 0x40000000
  if param[0]&0x0FFFFFFF != 0 {
    return dram_invalid ( file, prefix, matches, "baseaddr", param[0] )
  }

  // MHz
  if param[1] < 100 || param[1] > 1000 {
    return dram_invalid ( file, prefix, matches, "clk", param[1] )
  }

  // 2: DDR2, 3: DDR3
  if param[2] != 2 && param[2] != 3 {
    return dram_invalid ( file, prefix, matches, "type", param[2] )
  }

  if param[9] != 0 && param[9] != 1 {
    return dram_invalid ( file, prefix, matches, "odt_en", param[9] )
  }

  return dram_valid ( file, prefix, matches )

} // end dram_a10_validate


func dram_a10_print(file io.Writer, prefix string, param []uint32) {

  F := fmt.Fprintf

  F(file,"\n%s; %s\n",prefix,_DRAM_VARIANTS[0].matches)
  F(file,"%s[dram para]\n\n",prefix)
  F(file,"%sdram_baseaddr\t   = 0x%x\n",prefix,param[0])
  F(file,"%sdram_clk\t   = %d\n",prefix,param[1])
  F(file,"%sdram_type\t   = %d\n",prefix,param[2])
  F(file,"%sdram_rank_num\t   = 0x%x\n",prefix,param[3])
  F(file,"%sdram_chip_density  = 0x%x\n",prefix,param[4])
  F(file,"%sdram_io_width\t   = 0x%x\n",prefix,param[5])
  F(file,"%sdram_bus_width\t   = 0x%x\n",prefix,param[6])
  F(file,"%sdram_cas\t   = 0x%x\n",prefix,param[7])
  F(file,"%sdram_zq\t\t   = 0x%x\n",prefix,param[8])
  F(file,"%sdram_odt_en\t   = %d\n",prefix,param[9])
  F(file,"%sdram_size\t   = 0x%x\n",prefix,param[10])
  F(file,"%sdram_tpr0\t   = 0x%x\n",prefix,param[11])
  F(file,"%sdram_tpr1\t   = 0x%x\n",prefix,param[12])
  F(file,"%sdram_tpr2\t   = 0x%x\n",prefix,param[13])
  F(file,"%sdram_tpr3\t   = 0x%x\n",prefix,param[14])
  F(file,"%sdram_tpr4\t   = 0x%x\n",prefix,param[15])
  F(file,"%sdram_tpr5\t   = 0x%x\n",prefix,param[16])
  F(file,"%sdram_emr1\t   = 0x%x\n",prefix,param[17])
  F(file,"%sdram_emr2\t   = 0x%x\n",prefix,param[18])
  F(file,"%sdram_emr3\t   = 0x%x\n",prefix,param[19])
  F(file,"\n")

} // end dram_a10_print


/******/
/* H6 */
/******/

// Estructura emprada per l'H6.
//
//  0 clk     7 mr1    14 tpr1   21 tpr8
//  1 type    8 mr2    15 tpr2   22 tpr9
//  2 zq      9 mr3    16 tpr3   23 tpr10
//  3 odt_en 10 mr4    17 tpr4   24 tpr11
//  4 para1  11 mr5    18 tpr5   25 tpr12
//  5 para2  12 mr6    19 tpr6   26 tpr13
//  6 mr0    13 tpr0   20 tpr7   27 bits

func dram_h6_validate(

  file   io.Writer,
  prefix string,
  param  []uint32,

) bool {

  matches := _DRAM_VARIANTS[1].matches

  // MHz
  if param[0] < 100 || param[0] > 1000 {
    return dram_invalid ( file, prefix, matches, "clk", param[0] )
  }

  // 2: DDR2, 3: DDR3, 6: LPDDR2, 7: LPDDR3
  if param[1] != 2 && param[1] != 3 && param[1] != 6 && param[1] != 7 {
    return dram_invalid ( file, prefix, matches, "type", param[1] )
  }

  if param[3] != 0 && param[3] != 1 {
    return dram_invalid ( file, prefix, matches, "odt_en", param[3] )
  }

  if param[27] != 16 && param[27] != 32 {
    return dram_invalid ( file, prefix, matches, "bits", param[27] )
  }

  return dram_valid ( file, prefix, matches )

} // end dram_h6_validate


func dram_h6_print(file io.Writer, prefix string, param []uint32) {

  F := fmt.Fprintf

  F(file,"\n%s; For %s\n",prefix,_DRAM_VARIANTS[1].matches)
  F(file,"%s[dram para]\n\n",prefix)
  F(file,"%sdram_clk\t= %d\n",prefix,param[0])
  F(file,"%sdram_type\t= %d\n",prefix,param[1])
  F(file,"%sdram_zq\t\t= 0x%x\n",prefix,param[2])
  F(file,"%sdram_odt_en\t= %d\n",prefix,param[3])
  F(file,"%sdram_para1\t= 0x%x\n",prefix,param[4])
  F(file,"%sdram_para2\t= 0x%x\n",prefix,param[5])
  F(file,"%sdram_mr0\t= 0x%x\n",prefix,param[6])
  F(file,"%sdram_mr1\t= 0x%x\n",prefix,param[7])
  F(file,"%sdram_mr2\t= 0x%x\n",prefix,param[8])
  F(file,"%sdram_mr3\t= 0x%x\n",prefix,param[9])
  F(file,"%sdram_mr4\t= 0x%x\n",prefix,param[10])
  F(file,"%sdram_mr5\t= 0x%x\n",prefix,param[11])
  F(file,"%sdram_mr6\t= 0x%x\n",prefix,param[12])
  F(file,"%sdram_tpr0\t= 0x%08x\n",prefix,param[13])
  F(file,"%sdram_tpr1\t= 0x%08x\n",prefix,param[14])
  F(file,"%sdram_tpr2\t= 0x%08x\n",prefix,param[15])
  F(file,"%sdram_tpr3\t= 0x%08x\n",prefix,param[16])
  F(file,"%sdram_tpr4\t= 0x%x\n",prefix,param[17])
  F(file,"%sdram_tpr5\t= 0x%x\n",prefix,param[18])
  F(file,"%sdram_tpr6\t= 0x%x\n",prefix,param[19])
  F(file,"%sdram_tpr7\t= 0x%x\n",prefix,param[20])
  F(file,"%sdram_tpr8\t= 0x%x\n",prefix,param[21])
  F(file,"%sdram_tpr9\t= 0x%x\n",prefix,param[22])
  F(file,"%sdram_tpr10\t= 0x%x\n",prefix,param[23])
  F(file,"%sdram_tpr11\t= 0x%08x\n",prefix,param[24])
  F(file,"%sdram_tpr12\t= 0x%08x\n",prefix,param[25])
  F(file,"%sdram_tpr13\t= 0x%08x\n",prefix,param[26])
  F(file,"%sdram_bits\t= %d\n",prefix,param[27])
  F(file,"\n")

} // end dram_h6_print


/*******/
/* A31 */
/*******/

// Estructura emprada per A31 i derivats.
//
//  0 clk     7 mr1    14 tpr4   21 tpr11
//  1 type    8 mr2    15 tpr5   22 tpr12
//  2 zq      9 mr3    16 tpr6   23 tpr13
//  3 odt_en 10 tpr0   17 tpr7   24 bits
//  4 para1  11 tpr1   18 tpr8
//  5 para2  12 tpr2   19 tpr9
//  6 mr0    13 tpr3   20 tpr10

func dram_a31_validate(

  file   io.Writer,
  prefix string,
  param  []uint32,

) bool {

  matches := _DRAM_VARIANTS[2].matches

  // MHz
  if param[0] < 100 || param[0] > 1000 {
    return dram_invalid ( file, prefix, matches, "clk", param[0] )
  }

  // 2: DDR2, 3: DDR3, 6: LPDDR2, 7: LPDDR3
  if param[1] != 2 && param[1] != 3 && param[1] != 6 && param[1] != 7 {
    return dram_invalid ( file, prefix, matches, "type", param[1] )
  }

  if param[3] != 0 && param[3] != 1 {
    return dram_invalid ( file, prefix, matches, "odt_en", param[3] )
  }

  return dram_valid ( file, prefix, matches )

} // end dram_a31_validate


func dram_a31_print(file io.Writer, prefix string, param []uint32) {

  F := fmt.Fprintf

  F(file,"\n%s; For %s\n",prefix,_DRAM_VARIANTS[2].matches)
  F(file,"%s[dram para]\n\n",prefix)
  F(file,"%sdram_clk\t= %d\n",prefix,param[0])
  F(file,"%sdram_type\t= %d\n",prefix,param[1])
  F(file,"%sdram_zq\t\t= 0x%x\n",prefix,param[2])
  F(file,"%sdram_odt_en\t= %d\n",prefix,param[3])
  F(file,"%sdram_para1\t= 0x%x\n",prefix,param[4])
  F(file,"%sdram_para2\t= 0x%x\n",prefix,param[5])
  F(file,"%sdram_mr0\t= 0x%x\n",prefix,param[6])
  F(file,"%sdram_mr1\t= 0x%x\n",prefix,param[7])
  F(file,"%sdram_mr2\t= 0x%x\n",prefix,param[8])
  F(file,"%sdram_mr3\t= 0x%x\n",prefix,param[9])
  F(file,"%sdram_tpr0\t= 0x%08x\n",prefix,param[10])
  F(file,"%sdram_tpr1\t= 0x%08x\n",prefix,param[11])
  F(file,"%sdram_tpr2\t= 0x%08x\n",prefix,param[12])
  F(file,"%sdram_tpr3\t= 0x%08x\n",prefix,param[13])
  F(file,"%sdram_tpr4\t= 0x%x\n",prefix,param[14])
  F(file,"%sdram_tpr5\t= 0x%x\n",prefix,param[15])
  F(file,"%sdram_tpr6\t= 0x%x\n",prefix,param[16])
  F(file,"%sdram_tpr7\t= 0x%x\n",prefix,param[17])
  F(file,"%sdram_tpr8\t= 0x%x\n",prefix,param[18])
  F(file,"%sdram_tpr9\t= 0x%x\n",prefix,param[19])
  F(file,"%sdram_tpr10\t= 0x%x\n",prefix,param[20])
  F(file,"%sdram_tpr11\t= 0x%08x\n",prefix,param[21])
  F(file,"%sdram_tpr12\t= 0x%08x\n",prefix,param[22])
  F(file,"%sdram_tpr13\t= 0x%08x\n",prefix,param[23])
  F(file,"\n")

} // end dram_a31_print


/********/
/* H616 */
/********/

// Estructura emprada per H616, H700 i A523. En H616/H700 tpr14
// hauria de ser zero.
//
//  0 clk     8 mr0    16 mr12   24 tpr2
//  1 type    9 mr1    17 mr13   25 tpr3
//  2 dx_odt 10 mr2    18 mr14   26 tpr6
//  3 dx_dri 11 mr3    19 mr16   27 tpr10
//  4 ca_dri 12 mr4    20 mr17   28 tpr11
//  5 para0  13 mr5    21 mr22   29 tpr12
//  6 para1  14 mr6    22 tpr0   30 tpr13
//  7 para2  15 mr11   23 tpr1   31 tpr14

func dram_h616_validate(

  file   io.Writer,
  prefix string,
  param  []uint32,

) bool {

  matches := _DRAM_VARIANTS[3].matches

  // MHz
  if param[0] < 100 || param[0] > 1200 {
    return dram_invalid ( file, prefix, matches, "clk", param[0] )
  }

  // 2: DDR2, 3: DDR3, 4: DDR4, 6: LPDDR2, 7: LPDDR3, 8: LPDDR4
  if param[1] != 2 && param[1] != 3 && param[1] != 4 &&
    param[1] != 6 && param[1] != 7 && param[1] != 8 {
    return dram_invalid ( file, prefix, matches, "type", param[1] )
  }

  // ODT i drive strength per byte lane, un nibble per lane
  if param[2]&0xF0F0F0F0 != 0 {
    return dram_invalid ( file, prefix, matches, "dx_odt", param[2] )
  }

  if param[3]&0xF0F0F0F0 != 0 {
    return dram_invalid ( file, prefix, matches, "dx_dri", param[3] )
  }

  return dram_valid ( file, prefix, matches )

} // end dram_h616_validate


func dram_h616_print(file io.Writer, prefix string, param []uint32) {

  F := fmt.Fprintf

  F(file,"\n%s; For %s\n",prefix,_DRAM_VARIANTS[3].matches)
  F(file,"%s[dram para]\n\n",prefix)
  F(file,"%sdram_clk\t   = %d,\n",prefix,param[0])
  F(file,"%sdram_type\t   = %d,\n",prefix,param[1])
  F(file,"%sdram_dx_odt\t   = 0x%08X,\n",prefix,param[2])
  F(file,"%sdram_dx_dri\t   = 0x%08X,\n",prefix,param[3])
  F(file,"%sdram_ca_dri\t   = 0x%08X,\n",prefix,param[4])
  F(file,"%sdram_para0\t   = 0x%08X, ; aka odt_en on H616/H700\n",
    prefix,param[5])
  F(file,"%sdram_para1\t   = 0x%08X,\n",prefix,param[6])
  F(file,"%sdram_para2\t   = 0x%08X,\n",prefix,param[7])
  F(file,"%sdram_mr0\t   = 0x%X,\n",prefix,param[8])
  F(file,"%sdram_mr1\t   = 0x%X,\n",prefix,param[9])
  F(file,"%sdram_mr2\t   = 0x%X,\n",prefix,param[10])
  F(file,"%sdram_mr3\t   = 0x%X,\n",prefix,param[11])
  F(file,"%sdram_mr4\t   = 0x%X,\n",prefix,param[12])
  F(file,"%sdram_mr5\t   = 0x%X,\n",prefix,param[13])
  F(file,"%sdram_mr6\t   = 0x%X,\n",prefix,param[14])
  F(file,"%sdram_mr11\t   = 0x%X,\n",prefix,param[15])
  F(file,"%sdram_mr12\t   = 0x%X,\n",prefix,param[16])
  F(file,"%sdram_mr13\t   = 0x%X,\n",prefix,param[17])
  F(file,"%sdram_mr14\t   = 0x%X,\n",prefix,param[18])
  F(file,"%sdram_mr16\t   = 0x%X,\n",prefix,param[19])
  F(file,"%sdram_mr17\t   = 0x%X,\n",prefix,param[20])
  F(file,"%sdram_mr22\t   = 0x%X,\n",prefix,param[21])
  F(file,"%sdram_tpr0\t   = 0x%08X,\n",prefix,param[22])
  F(file,"%sdram_tpr1\t   = 0x%X,\n",prefix,param[23])
  F(file,"%sdram_tpr2\t   = 0x%X,\n",prefix,param[24])
  F(file,"%sdram_tpr3\t   = 0x%X,\n",prefix,param[25])
  F(file,"%sdram_tpr6\t   = 0x%08X,\n",prefix,param[26])
  F(file,"%sdram_tpr10\t   = 0x%08X,\n",prefix,param[27])
  F(file,"%sdram_tpr11\t   = 0x%08X,\n",prefix,param[28])
  F(file,"%sdram_tpr12\t   = 0x%08X,\n",prefix,param[29])
  F(file,"%sdram_tpr13\t   = 0x%X,\n",prefix,param[30])
  F(file,"%sdram_tpr14\t   = 0x%X, ; unused and 0 on anything but A523\n",
    prefix,param[31])
  F(file,"\n")

} // end dram_h616_print


/*******/
/* RAW */
/*******/

// Quan cap estructura coneguda és vàlida s'imprimeixen les 32
// paraules tal qual.
func dram_raw_print(file io.Writer, prefix string, param []uint32) {

  fmt.Fprintf ( file, "%s; Unknown structure\n", prefix )
  for i := 0; i < DRAM_PARAM_COUNT; i++ {
    fmt.Fprintf ( file, "%sdram_%02d\t= 0x%08X\n", prefix, i, param[i] )
  }

} // end dram_raw_print


/**********************/
/* FUNCIONS PÚBLIQUES */
/**********************/

// Classifica el bloc de paràmetres de la DRAM i imprimeix els seus
// camps. Mai falla: si cap estructura coneguda és vàlida s'imprimeix
// el bloc en cru.
func PrintDramParam(file io.Writer, prefix string, param []uint32) {

  fmt.Fprintf ( file, "\n%sLooking for a valid dram parameter"+
    " structure...\n", prefix )
  ind := classify_dram_param ( file, prefix, param )
  if ind == -1 {
    dram_raw_print ( file, prefix, param )
  } else {
    _DRAM_VARIANTS[ind].print ( file, prefix, param )
  }

} // end PrintDramParam
