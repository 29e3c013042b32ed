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
 *  checksum.go - Comprovació del checksum d'una imatge eGON.
 *
 */

package egon;

import (
  "fmt"
  "io"
)


/*************/
/* CONSTANTS */
/*************/

// Valor inicial de l'acumulador.
const CHECKSUM_SEED = 0x5f0a6c39

const _WORDS_PER_SECTOR = SECTOR_SIZE/4

// Índex de la paraula que conté el checksum dins del primer
// sector. Aquesta paraula s'exclou de la suma.
const _CHECKSUM_WORD = 3


/************/
/* FUNCIONS */
/************/

// Recalcula el checksum de la imatge i el compara amb el valor
// guardat en la capçalera. El primer sector ja està llegit; la resta
// de sectors, fins a Filesize, es lligen seqüencialment de f. Un
// checksum que no coincideix no és un error, sols es reporta; un
// error de lectura torna ErrTruncatedImage.
func VerifyChecksum(

  header  *Header,
  sector0 []byte,
  f       io.Reader,
  file    io.Writer,
  prefix  string,

) (bool,error) {

  var checksum uint32 = CHECKSUM_SEED

  // Suma el sector ja llegit, excloent la paraula del checksum.
  for i := 0; i < _WORDS_PER_SECTOR; i++ {
    if i == _CHECKSUM_WORD { continue }
    checksum+= _u32 ( sector0[i*4:] )
  }

  // Suma la resta de sectors
  var mem [SECTOR_SIZE]byte
  buf := mem[:]
  offset := uint32(SECTOR_SIZE)
  for ; offset < header.Filesize; offset+= SECTOR_SIZE {
    if _,err := io.ReadFull ( f, buf ); err != nil {
      fmt.Fprintf ( file, "%sError: unable to read sector at offset"+
        " %d: %v\n", prefix, offset, err )
      return false,fmt.Errorf ( "error while verifying the eGON"+
        " checksum: %w", ErrTruncatedImage )
    }
    for i := 0; i < _WORDS_PER_SECTOR; i++ {
      checksum+= _u32 ( buf[i*4:] )
    }
  }

  // Compara i reporta
  if checksum != header.Checksum {
    fmt.Fprintf ( file, "%seGON checksum mismatch: 0x%08X vs 0x%08X\n",
      prefix, checksum, header.Checksum )
    return false,nil
  }
  fmt.Fprintf ( file, "%seGON checksum matches.\n", prefix )

  return true,nil

} // end VerifyChecksum
